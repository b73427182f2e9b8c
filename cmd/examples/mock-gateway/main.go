// Copyright (C) 2026 PaySig Project
//
// This file is part of paysig-go.
//
// paysig-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// paysig-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with paysig-go.  If not, see <https://www.gnu.org/licenses/>.

// Command mock-gateway runs a local stand-in for the payment gateway: it
// verifies inbound HTTP signatures with the same shared credentials the
// client signs with and serves an in-memory TMS customers resource.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paysig-project/paysig-go/pkg/config"
	"github.com/paysig-project/paysig-go/pkg/server"
	"github.com/paysig-project/paysig-go/pkg/tms"
)

// customerStore is an in-memory TMS customers resource
type customerStore struct {
	mu        sync.RWMutex
	customers map[string]*tms.Customer
	order     []string
}

func newCustomerStore() *customerStore {
	return &customerStore{customers: make(map[string]*tms.Customer)}
}

func (s *customerStore) create(c *tms.Customer) *tms.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	s.customers[c.ID] = c
	s.order = append(s.order, c.ID)
	return c
}

func (s *customerStore) get(id string) (*tms.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	return c, ok
}

func (s *customerStore) update(id string, in *tms.Customer) (*tms.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.customers[id]
	if !ok {
		return nil, false
	}
	if in.BuyerInformation != nil {
		existing.BuyerInformation = in.BuyerInformation
	}
	if in.ClientReferenceInformation != nil {
		existing.ClientReferenceInformation = in.ClientReferenceInformation
	}
	return existing, true
}

func (s *customerStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return false
	}
	delete(s.customers, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *customerStore) list(offset, limit int) *tms.CustomerList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := &tms.CustomerList{Offset: offset, Limit: limit, Total: len(s.order)}
	for i := offset; i < len(s.order) && i < offset+limit; i++ {
		list.Embedded.Customers = append(list.Embedded.Customers, *s.customers[s.order[i]])
	}
	list.Count = len(list.Embedded.Customers)
	return list
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	cfg := config.FromEnv()
	if cfg.Validate() != nil {
		log.Println("No PAYSIG_* environment set, using demo credentials")
		cfg.MerchantID = "demo-merchant"
		cfg.KeyID = "08c94330-f618-42a3-b09d-e1e43be5efda"
		cfg.SecretKey = base64.StdEncoding.EncodeToString([]byte("demo-shared-secret-0123456789abc"))
	}

	creds, err := cfg.Credentials()
	if err != nil {
		log.Fatalf("Failed to build credentials: %v", err)
	}

	store := newCustomerStore()
	auth := server.NewSignatureAuthMiddleware(creds)

	r := chi.NewRouter()
	r.Use(auth.Wrap)
	r.Route("/tms/v2/customers", func(r chi.Router) {
		r.Post("/", handleCreate(store))
		r.Get("/", handleList(store))
		r.Get("/{customerID}", handleGet(store))
		r.Patch("/{customerID}", handleUpdate(store))
		r.Delete("/{customerID}", handleDelete(store))
	})

	log.Printf("mock gateway listening on %s (merchant %s)", *addr, creds.MerchantID())
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func handleCreate(store *customerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}

		var customer tms.Customer
		if err := json.Unmarshal(body, &customer); err != nil {
			writeError(w, http.StatusBadRequest, "malformed customer payload")
			return
		}

		created := store.create(&customer)
		writeJSON(w, http.StatusCreated, created)
	}
}

func handleGet(store *customerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, ok := store.get(chi.URLParam(r, "customerID"))
		if !ok {
			writeError(w, http.StatusNotFound, "no such customer")
			return
		}
		writeJSON(w, http.StatusOK, customer)
	}
}

func handleUpdate(store *customerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in tms.Customer
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "malformed customer payload")
			return
		}

		updated, ok := store.update(chi.URLParam(r, "customerID"), &in)
		if !ok {
			writeError(w, http.StatusNotFound, "no such customer")
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func handleDelete(store *customerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !store.delete(chi.URLParam(r, "customerID")) {
			writeError(w, http.StatusNotFound, "no such customer")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleList(store *customerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := queryInt(r, "offset", 0)
		limit := queryInt(r, "limit", 20)
		writeJSON(w, http.StatusOK, store.list(offset, limit))
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
