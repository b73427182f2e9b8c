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

package verifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paysig-project/paysig-go/pkg/credentials"
	"github.com/paysig-project/paysig-go/pkg/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials(t *testing.T) *credentials.Credentials {
	t.Helper()
	creds, err := credentials.New(
		"merchant-001",
		"08c94330-f618-42a3-b09d-e1e43be5efda",
		base64.StdEncoding.EncodeToString([]byte("test-shared-secret-0123456789abcdef")),
	)
	require.NoError(t, err)
	return creds
}

// buildSignedRequest signs one request and returns the emitted header map
func buildSignedRequest(t *testing.T, creds *credentials.Credentials, method, path, host string, body []byte, at time.Time) map[string]string {
	t.Helper()
	s := signer.NewDefaultGatewaySignerWithClock(func() time.Time { return at })
	headers, err := s.SignRequest(context.Background(), creds, &signer.Request{
		Method: method,
		Path:   path,
		Host:   host,
		Body:   body,
	})
	require.NoError(t, err)
	return headers
}

func TestDefaultGatewayVerifier_RoundTripWithBody(t *testing.T) {
	// Test Case 1: verifier accepts exactly what the signer emits

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)
	at := time.Now()

	body := []byte(`{"buyerInformation":{"email":"a@b.com"}}`)
	headers := buildSignedRequest(t, creds, "POST", "/tms/v2/customers", "apitest.example.com", body, at)

	req := httptest.NewRequest("POST", "https://apitest.example.com/tms/v2/customers", bytes.NewReader(body))
	for name, value := range headers {
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	v := NewDefaultGatewayVerifier()

	// Execute
	err := v.VerifyRequest(ctx, creds, req, body)

	// Assert
	require.NoError(t, err)
}

func TestDefaultGatewayVerifier_RoundTripWithoutBody(t *testing.T) {
	// Test Case 2: bodiless GET round trip

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	headers := buildSignedRequest(t, creds, "GET", "/tms/v2/customers", "apitest.example.com", nil, time.Now())

	req := httptest.NewRequest("GET", "https://apitest.example.com/tms/v2/customers", nil)
	for name, value := range headers {
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	v := NewDefaultGatewayVerifier()

	// Execute
	err := v.VerifyRequest(ctx, creds, req, nil)

	// Assert
	require.NoError(t, err)
}

func TestDefaultGatewayVerifier_TamperedBody(t *testing.T) {
	// Test Case 3: a modified body is rejected at the digest check

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	body := []byte(`{"buyerInformation":{"email":"a@b.com"}}`)
	headers := buildSignedRequest(t, creds, "POST", "/tms/v2/customers", "apitest.example.com", body, time.Now())

	tampered := []byte(`{"buyerInformation":{"email":"x@b.com"}}`)
	req := httptest.NewRequest("POST", "https://apitest.example.com/tms/v2/customers", bytes.NewReader(tampered))
	for name, value := range headers {
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	v := NewDefaultGatewayVerifier()

	// Execute
	err := v.VerifyRequest(ctx, creds, req, tampered)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest")
}

func TestDefaultGatewayVerifier_WrongSecret(t *testing.T) {
	// Test Case 4: a signature minted with a different secret is rejected

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	otherCreds, err := credentials.New(
		"merchant-001",
		"08c94330-f618-42a3-b09d-e1e43be5efda",
		base64.StdEncoding.EncodeToString([]byte("a-completely-different-secret")),
	)
	require.NoError(t, err)

	body := []byte(`{"buyerInformation":{"email":"a@b.com"}}`)
	headers := buildSignedRequest(t, otherCreds, "POST", "/tms/v2/customers", "apitest.example.com", body, time.Now())

	req := httptest.NewRequest("POST", "https://apitest.example.com/tms/v2/customers", bytes.NewReader(body))
	for name, value := range headers {
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	v := NewDefaultGatewayVerifier()

	// Execute
	err = v.VerifyRequest(ctx, creds, req, body)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature mismatch")
}

func TestDefaultGatewayVerifier_StaleDate(t *testing.T) {
	// Test Case 5: a Date beyond the skew tolerance is rejected

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	stale := time.Now().Add(-30 * time.Minute)
	headers := buildSignedRequest(t, creds, "GET", "/tms/v2/customers", "apitest.example.com", nil, stale)

	req := httptest.NewRequest("GET", "https://apitest.example.com/tms/v2/customers", nil)
	for name, value := range headers {
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	v := NewDefaultGatewayVerifier()

	// Execute
	err := v.VerifyRequest(ctx, creds, req, nil)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clock-skew")
}

func TestDefaultGatewayVerifier_SkewCheckDisabled(t *testing.T) {
	// Test Case 6: zero tolerance disables the freshness check

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	stale := time.Now().Add(-24 * time.Hour)
	headers := buildSignedRequest(t, creds, "GET", "/tms/v2/customers", "apitest.example.com", nil, stale)

	req := httptest.NewRequest("GET", "https://apitest.example.com/tms/v2/customers", nil)
	for name, value := range headers {
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	v := NewDefaultGatewayVerifier()
	v.SetMaxClockSkew(0)

	// Execute
	err := v.VerifyRequest(ctx, creds, req, nil)

	// Assert
	require.NoError(t, err)
}

func TestDefaultGatewayVerifier_MissingSignature(t *testing.T) {
	// Test Case 7: requests without a Signature header are rejected

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	req := httptest.NewRequest("GET", "https://apitest.example.com/tms/v2/customers", nil)

	v := NewDefaultGatewayVerifier()

	// Execute
	err := v.VerifyRequest(ctx, creds, req, nil)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing Signature")
}

func TestDefaultGatewayVerifier_KeyIDMismatch(t *testing.T) {
	// Test Case 8: a keyid the receiver does not know is rejected

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	otherKey, err := credentials.New(
		"merchant-001",
		"a-different-key-id",
		base64.StdEncoding.EncodeToString([]byte("test-shared-secret-0123456789abcdef")),
	)
	require.NoError(t, err)

	headers := buildSignedRequest(t, otherKey, "GET", "/tms/v2/customers", "apitest.example.com", nil, time.Now())

	req := httptest.NewRequest("GET", "https://apitest.example.com/tms/v2/customers", nil)
	for name, value := range headers {
		if name == signer.HeaderHost {
			req.Host = value
			continue
		}
		req.Header.Set(name, value)
	}

	v := NewDefaultGatewayVerifier()

	// Execute
	err = v.VerifyRequest(ctx, creds, req, nil)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyid")
}

func TestDefaultGatewayVerifier_ReorderedHeadersAttribute(t *testing.T) {
	// Test Case 9: reordering the headers attribute invalidates the signature

	// Setup
	ctx := context.Background()
	creds := testCredentials(t)

	headers := buildSignedRequest(t, creds, "GET", "/tms/v2/customers", "apitest.example.com", nil, time.Now())

	reordered := strings.Replace(headers[signer.HeaderSignature],
		`headers="host date (request-target)"`,
		`headers="date host (request-target)"`, 1)
	require.NotEqual(t, headers[signer.HeaderSignature], reordered)

	req := httptest.NewRequest("GET", "https://apitest.example.com/tms/v2/customers", nil)
	req.Host = headers[signer.HeaderHost]
	req.Header.Set(signer.HeaderDate, headers[signer.HeaderDate])
	req.Header.Set(signer.HeaderSignature, reordered)
	req.Header.Set(signer.HeaderMerchantID, headers[signer.HeaderMerchantID])

	v := NewDefaultGatewayVerifier()

	// Execute
	err := v.VerifyRequest(ctx, creds, req, nil)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature mismatch")
}

func TestParseSignature_Malformed(t *testing.T) {
	// Test Case 10: malformed Signature values are rejected during parsing

	cases := []struct {
		name string
		raw  string
	}{
		{"no attributes", "garbage"},
		{"unquoted value", `keyid=abc, algorithm="HmacSHA256", headers="host", signature="c2ln"`},
		{"unknown attribute", `keyid="k", algorithm="HmacSHA256", headers="host", signature="c2ln", extra="x"`},
		{"missing signature", `keyid="k", algorithm="HmacSHA256", headers="host"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := parseSignature(tc.raw)
			require.Error(t, err)
			assert.Nil(t, params)
		})
	}
}
