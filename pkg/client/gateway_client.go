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

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/paysig-project/paysig-go/pkg/credentials"
	"github.com/paysig-project/paysig-go/pkg/signer"
)

// HeaderCorrelationID carries a per-request id the gateway echoes back for
// support inquiries. It is not part of the signed header set.
const HeaderCorrelationID = "v-c-correlation-id"

// APIError is a non-2xx gateway response
type APIError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error: %s: %s", e.Status, string(e.Body))
}

// GatewayClient is an HTTP client that signs every outbound request with the
// merchant's credentials before sending it
type GatewayClient struct {
	creds      *credentials.Credentials
	signer     signer.GatewaySigner
	httpClient *http.Client
	host       string
	scheme     string
}

// NewGatewayClient creates a client for the given gateway host.
// If httpClient is nil, http.DefaultClient is used.
func NewGatewayClient(creds *credentials.Credentials, host string, httpClient *http.Client) *GatewayClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &GatewayClient{
		creds:      creds,
		signer:     signer.NewDefaultGatewaySigner(),
		httpClient: httpClient,
		host:       host,
		scheme:     "https",
	}
}

// SetScheme overrides the URL scheme. Local gateways use "http".
func (c *GatewayClient) SetScheme(scheme string) {
	c.scheme = scheme
}

// Host returns the gateway host requests are addressed to
func (c *GatewayClient) Host() string {
	return c.host
}

// Do signs and executes one request. path must include any query string and
// body may be nil. The signed header map is merged into the request
// unmodified.
func (c *GatewayClient) Do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	// Check context first
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	headers, err := c.signer.SignRequest(ctx, c.creds, &signer.Request{
		Method: method,
		Path:   path,
		Host:   c.host,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), c.scheme+"://"+c.host+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, value := range headers {
		// Host is a request property, not a header field, in net/http
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderCorrelationID, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return resp, nil
}

// Get sends a signed GET request
func (c *GatewayClient) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.Do(ctx, "GET", path, nil)
}

// Post sends a signed POST request with a JSON body
func (c *GatewayClient) Post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.Do(ctx, "POST", path, body)
}

// Put sends a signed PUT request with a JSON body
func (c *GatewayClient) Put(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.Do(ctx, "PUT", path, body)
}

// Patch sends a signed PATCH request with a JSON body
func (c *GatewayClient) Patch(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.Do(ctx, "PATCH", path, body)
}

// Delete sends a signed DELETE request
func (c *GatewayClient) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.Do(ctx, "DELETE", path, nil)
}
