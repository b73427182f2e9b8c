package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/paysig-project/paysig-go/pkg/credentials"
	"github.com/paysig-project/paysig-go/pkg/signer"
	"github.com/paysig-project/paysig-go/pkg/verifier"
)

type contextKey string

const merchantIDKey contextKey = "merchant_id"

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// SignatureAuthMiddleware provides HTTP middleware for gateway signature
// verification
type SignatureAuthMiddleware struct {
	creds        *credentials.Credentials
	verifier     verifier.SignatureVerifier
	errorHandler ErrorHandler
	optional     bool
}

// NewSignatureAuthMiddleware creates middleware verifying against the given
// shared credentials
func NewSignatureAuthMiddleware(creds *credentials.Credentials) *SignatureAuthMiddleware {
	return &SignatureAuthMiddleware{
		creds:        creds,
		verifier:     verifier.NewDefaultGatewayVerifier(),
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// NewSignatureAuthMiddlewareWithVerifier creates middleware with a custom verifier
func NewSignatureAuthMiddlewareWithVerifier(creds *credentials.Credentials, v verifier.SignatureVerifier) *SignatureAuthMiddleware {
	return &SignatureAuthMiddleware{
		creds:        creds,
		verifier:     v,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler
func (m *SignatureAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional
// If true, requests without a Signature header are allowed to pass through
func (m *SignatureAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with signature authentication
func (m *SignatureAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == "OPTIONS" {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get(signer.HeaderSignature) == "" {
			if m.optional {
				// Allow request to proceed without a merchant id in context
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing Signature header"))
			return
		}

		// Read body to preserve it for the handler
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if err := m.verifier.VerifyRequest(r.Context(), m.creds, r, bodyBytes); err != nil {
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}

		// Restore body for the handler
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		// Add the verified merchant id to context
		ctx := context.WithValue(r.Context(), merchantIDKey, r.Header.Get(signer.HeaderMerchantID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MerchantIDFromContext extracts the verified merchant id from request context
func MerchantIDFromContext(ctx context.Context) (string, bool) {
	merchantID, ok := ctx.Value(merchantIDKey).(string)
	return merchantID, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
