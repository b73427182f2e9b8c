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
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/paysig-project/paysig-go/pkg/client"
)

const customersBasePath = "/tms/v2/customers"

// ClientReferenceInformation carries the merchant's own reference code
type ClientReferenceInformation struct {
	Code string `json:"code,omitempty"`
}

// BuyerInformation identifies the customer on the merchant's side
type BuyerInformation struct {
	MerchantCustomerID string `json:"merchantCustomerID,omitempty"`
	Email              string `json:"email,omitempty"`
}

// Customer is the TMS customer resource. The shape is the gateway's
// contract; this SDK passes it through unchanged.
type Customer struct {
	ID                         string                      `json:"id,omitempty"`
	ClientReferenceInformation *ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	BuyerInformation           *BuyerInformation           `json:"buyerInformation,omitempty"`
}

// CustomerList is one page of customers
type CustomerList struct {
	Offset   int `json:"offset"`
	Limit    int `json:"limit"`
	Count    int `json:"count"`
	Total    int `json:"total"`
	Embedded struct {
		Customers []Customer `json:"customers"`
	} `json:"_embedded"`
}

// CustomersService exposes the TMS customers resource over a signing client
type CustomersService struct {
	client *client.GatewayClient
}

// NewCustomersService creates a customers service on top of a gateway client
func NewCustomersService(c *client.GatewayClient) *CustomersService {
	return &CustomersService{client: c}
}

// Create creates a customer
func (s *CustomersService) Create(ctx context.Context, customer *Customer) (*Customer, error) {
	body, err := json.Marshal(customer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal customer: %w", err)
	}

	resp, err := s.client.Post(ctx, customersBasePath, body)
	if err != nil {
		return nil, err
	}

	var created Customer
	if err := decodeResponse(resp, http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Get retrieves a customer by id
func (s *CustomersService) Get(ctx context.Context, customerID string) (*Customer, error) {
	resp, err := s.client.Get(ctx, customersBasePath+"/"+customerID)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeResponse(resp, http.StatusOK, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update patches a customer
func (s *CustomersService) Update(ctx context.Context, customerID string, customer *Customer) (*Customer, error) {
	body, err := json.Marshal(customer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal customer: %w", err)
	}

	resp, err := s.client.Patch(ctx, customersBasePath+"/"+customerID, body)
	if err != nil {
		return nil, err
	}

	var updated Customer
	if err := decodeResponse(resp, http.StatusOK, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a customer
func (s *CustomersService) Delete(ctx context.Context, customerID string) error {
	resp, err := s.client.Delete(ctx, customersBasePath+"/"+customerID)
	if err != nil {
		return err
	}
	return decodeResponse(resp, http.StatusNoContent, nil)
}

// List retrieves one page of customers
func (s *CustomersService) List(ctx context.Context, offset, limit int) (*CustomerList, error) {
	path := fmt.Sprintf("%s?offset=%d&limit=%d", customersBasePath, offset, limit)

	resp, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var list CustomerList
	if err := decodeResponse(resp, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// decodeResponse drains the response, maps unexpected statuses to APIError,
// and unmarshals the body into out when requested
func decodeResponse(resp *http.Response, wantStatus int, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return &client.APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
