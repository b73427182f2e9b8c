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

package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"sort"

	"github.com/paysig-project/paysig-go/pkg/config"
	"github.com/paysig-project/paysig-go/pkg/signer"
)

func main() {
	fmt.Println("paysig-go - Simple Client Example")
	fmt.Println("=================================")

	// Load configuration from .env / environment
	cfg := config.FromEnv()
	if cfg.Validate() != nil {
		// No real credentials configured; fall back to throwaway demo values
		fmt.Println("\nNo PAYSIG_* environment set, using demo credentials")
		cfg.MerchantID = "demo-merchant"
		cfg.KeyID = "08c94330-f618-42a3-b09d-e1e43be5efda"
		cfg.SecretKey = base64.StdEncoding.EncodeToString([]byte("demo-shared-secret-0123456789abc"))
		cfg.Host = "apitest.example.com"
	}

	creds, err := cfg.Credentials()
	if err != nil {
		log.Fatalf("Failed to build credentials: %v", err)
	}
	fmt.Printf("\n1. Credentials loaded: %s\n", creds)

	ctx := context.Background()
	s := signer.NewDefaultGatewaySigner()

	// Sign a POST with a JSON body
	fmt.Println("\n2. Signing POST /tms/v2/customers ...")
	body := []byte(`{"buyerInformation":{"email":"a@b.com"}}`)
	headers, err := s.SignRequest(ctx, creds, &signer.Request{
		Method: "POST",
		Path:   "/tms/v2/customers",
		Host:   cfg.Host,
		Body:   body,
	})
	if err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}
	printHeaders(headers)

	// Sign a GET without a body; note the missing Digest header
	fmt.Println("\n3. Signing GET /tms/v2/customers ...")
	headers, err = s.SignRequest(ctx, creds, &signer.Request{
		Method: "GET",
		Path:   "/tms/v2/customers",
		Host:   cfg.Host,
	})
	if err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}
	printHeaders(headers)

	fmt.Println("\nMerge these headers unmodified into the outgoing request,")
	fmt.Println("or let client.GatewayClient do both steps for you.")
}

func printHeaders(headers map[string]string) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("   %s: %s\n", name, headers[name])
	}
}
