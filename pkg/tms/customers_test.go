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

package tms

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paysig-project/paysig-go/pkg/client"
	"github.com/paysig-project/paysig-go/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, handler http.HandlerFunc) (*CustomersService, *httptest.Server) {
	t.Helper()

	creds, err := credentials.New(
		"merchant-001",
		"key-001",
		base64.StdEncoding.EncodeToString([]byte("tms-test-secret")),
	)
	require.NoError(t, err)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := client.NewGatewayClient(creds, strings.TrimPrefix(ts.URL, "http://"), ts.Client())
	c.SetScheme("http")
	return NewCustomersService(c), ts
}

func TestCustomersService_Create(t *testing.T) {
	// Test Case 1: Create POSTs the customer and decodes the created resource

	// Setup
	svc, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/tms/v2/customers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in Customer
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &in))
		assert.Equal(t, "a@b.com", in.BuyerInformation.Email)

		in.ID = "C1A2B3C4D5E6F7G8"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	})

	// Execute
	created, err := svc.Create(context.Background(), &Customer{
		BuyerInformation: &BuyerInformation{Email: "a@b.com"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "C1A2B3C4D5E6F7G8", created.ID)
	assert.Equal(t, "a@b.com", created.BuyerInformation.Email)
}

func TestCustomersService_Get(t *testing.T) {
	// Test Case 2: Get addresses the customer by id

	// Setup
	svc, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/tms/v2/customers/C1A2B3C4", r.URL.Path)

		json.NewEncoder(w).Encode(Customer{
			ID:               "C1A2B3C4",
			BuyerInformation: &BuyerInformation{Email: "a@b.com"},
		})
	})

	// Execute
	customer, err := svc.Get(context.Background(), "C1A2B3C4")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "C1A2B3C4", customer.ID)
}

func TestCustomersService_Update(t *testing.T) {
	// Test Case 3: Update PATCHes the customer

	// Setup
	svc, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/tms/v2/customers/C1A2B3C4", r.URL.Path)

		var in Customer
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &in))
		in.ID = "C1A2B3C4"
		json.NewEncoder(w).Encode(in)
	})

	// Execute
	updated, err := svc.Update(context.Background(), "C1A2B3C4", &Customer{
		BuyerInformation: &BuyerInformation{Email: "new@b.com"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", updated.BuyerInformation.Email)
}

func TestCustomersService_Delete(t *testing.T) {
	// Test Case 4: Delete expects 204 and no body

	// Setup
	svc, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/tms/v2/customers/C1A2B3C4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	// Execute
	err := svc.Delete(context.Background(), "C1A2B3C4")

	// Assert
	require.NoError(t, err)
}

func TestCustomersService_List(t *testing.T) {
	// Test Case 5: List passes pagination and decodes the embedded page

	// Setup
	svc, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/tms/v2/customers", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("offset"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		list := CustomerList{Offset: 40, Limit: 20, Count: 1, Total: 41}
		list.Embedded.Customers = []Customer{{ID: "C-LAST"}}
		json.NewEncoder(w).Encode(list)
	})

	// Execute
	list, err := svc.List(context.Background(), 40, 20)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 41, list.Total)
	require.Len(t, list.Embedded.Customers, 1)
	assert.Equal(t, "C-LAST", list.Embedded.Customers[0].ID)
}

func TestCustomersService_NotFound(t *testing.T) {
	// Test Case 6: non-2xx responses surface as APIError

	// Setup
	svc, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such customer"}`))
	})

	// Execute
	customer, err := svc.Get(context.Background(), "MISSING")

	// Assert
	require.Error(t, err)
	assert.Nil(t, customer)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, string(apiErr.Body), "no such customer")
}
