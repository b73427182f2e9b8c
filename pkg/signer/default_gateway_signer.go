package signer

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/paysig-project/paysig-go/pkg/credentials"
)

// Canonical element names, in the fixed order they are signed.
const (
	elementHost          = "host"
	elementDate          = "date"
	elementRequestTarget = "(request-target)"
	elementDigest        = "digest"
)

var validMethods = map[string]struct{}{
	"GET":    {},
	"POST":   {},
	"PUT":    {},
	"PATCH":  {},
	"DELETE": {},
}

// signedElement is one (name, value) pair of the canonical signing string.
// The same ordered slice feeds both the string that is HMAC-signed and the
// headers attribute of the Signature value, so the two cannot drift apart.
type signedElement struct {
	name  string
	value string
}

// DefaultGatewaySigner implements GatewaySigner with HMAC-SHA256 signatures
// over the canonical signing string. It is stateless and safe for concurrent
// use.
type DefaultGatewaySigner struct {
	now func() time.Time
}

// NewDefaultGatewaySigner creates a signer stamping wall-clock time
func NewDefaultGatewaySigner() *DefaultGatewaySigner {
	return &DefaultGatewaySigner{now: time.Now}
}

// NewDefaultGatewaySignerWithClock creates a signer with an injected clock.
// Tests use this to pin the date element of the signing string.
func NewDefaultGatewaySignerWithClock(now func() time.Time) *DefaultGatewaySigner {
	if now == nil {
		now = time.Now
	}
	return &DefaultGatewaySigner{now: now}
}

// SignRequest signs a request using the current time for the date element
func (s *DefaultGatewaySigner) SignRequest(ctx context.Context, creds *credentials.Credentials, req *Request) (map[string]string, error) {
	return s.SignRequestWithOptions(ctx, creds, req, nil)
}

// SignRequestWithOptions signs a request with custom options
func (s *DefaultGatewaySigner) SignRequestWithOptions(ctx context.Context, creds *credentials.Credentials, req *Request, opts *SigningOptions) (map[string]string, error) {
	// Check context
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validate credentials
	if creds == nil {
		return nil, &SigningError{Reason: "credentials cannot be nil"}
	}
	if len(creds.SecretKey()) == 0 {
		return nil, &SigningError{Reason: "secret key is empty"}
	}

	// Use default options if nil
	if opts == nil {
		opts = &SigningOptions{}
	}

	// Receivers reject requests outside their clock-skew window, so the date
	// is stamped fresh per call, never cached.
	date := opts.Date
	if date.IsZero() {
		date = s.now()
	}
	dateValue := date.UTC().Format(http.TimeFormat)

	// Build the ordered signing elements
	elements, err := canonicalElements(req, dateValue)
	if err != nil {
		return nil, err
	}

	// Compute the HMAC over the canonical signing string
	mac := hmac.New(sha256.New, creds.SecretKey())
	mac.Write([]byte(signingString(elements)))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// Assemble the final header set
	headers := map[string]string{
		HeaderHost:       req.Host,
		HeaderDate:       dateValue,
		HeaderSignature:  buildSignatureValue(creds.KeyID(), signedHeaderNames(elements), signature),
		HeaderMerchantID: creds.MerchantID(),
	}
	for _, el := range elements {
		if el.name == elementDigest {
			headers[HeaderDigest] = el.value
		}
	}

	return headers, nil
}

// canonicalElements builds the ordered (name, value) pairs covered by the
// signature: host, date, (request-target), and digest when a body is present.
func canonicalElements(req *Request, dateValue string) ([]signedElement, error) {
	if req == nil {
		return nil, &InvalidRequestError{Reason: "request cannot be nil"}
	}

	method := strings.ToUpper(req.Method)
	if _, ok := validMethods[method]; !ok {
		return nil, &InvalidRequestError{Reason: fmt.Sprintf("unsupported method %q", req.Method)}
	}
	if !strings.HasPrefix(req.Path, "/") {
		return nil, &InvalidRequestError{Reason: fmt.Sprintf("path %q must start with /", req.Path)}
	}
	if req.Host == "" {
		return nil, &InvalidRequestError{Reason: "host cannot be empty"}
	}

	elements := []signedElement{
		{name: elementHost, value: req.Host},
		{name: elementDate, value: dateValue},
		{name: elementRequestTarget, value: strings.ToLower(method) + " " + req.Path},
	}

	// A zero-length body signs like no body at all. An explicit empty JSON
	// object ("{}") is two bytes and still gets a digest.
	if len(req.Body) > 0 {
		elements = append(elements, signedElement{name: elementDigest, value: digestValue(req.Body)})
	}

	return elements, nil
}

// digestValue hashes the body for the Digest header
func digestValue(body []byte) string {
	sum := sha256.Sum256(body)
	return DigestPrefix + base64.StdEncoding.EncodeToString(sum[:])
}

// signingString joins the elements into the exact bytes covered by the HMAC:
// "name: value" lines joined by \n, no trailing newline.
func signingString(elements []signedElement) string {
	lines := make([]string, len(elements))
	for i, el := range elements {
		lines[i] = el.name + ": " + el.value
	}
	return strings.Join(lines, "\n")
}

// signedHeaderNames joins the element names for the headers attribute
func signedHeaderNames(elements []signedElement) string {
	names := make([]string, len(elements))
	for i, el := range elements {
		names[i] = el.name
	}
	return strings.Join(names, " ")
}

// buildSignatureValue assembles the Signature header value
func buildSignatureValue(keyID, headerNames, signature string) string {
	return fmt.Sprintf(`keyid="%s", algorithm="%s", headers="%s", signature="%s"`,
		keyID, Algorithm, headerNames, signature)
}
