package verifier

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
	"github.com/paysig-project/paysig-go/pkg/signer"
)

// DefaultMaxClockSkew is the default tolerance applied to the Date header
const DefaultMaxClockSkew = 5 * time.Minute

// signatureParams are the parsed attributes of a Signature header value
type signatureParams struct {
	KeyID     string
	Algorithm string
	Headers   []string
	Signature string
}

// DefaultGatewayVerifier implements SignatureVerifier by recomputing the
// HMAC over the signing string declared in the request's headers attribute
// and comparing in constant time.
type DefaultGatewayVerifier struct {
	maxClockSkew time.Duration
	now          func() time.Time
}

// NewDefaultGatewayVerifier creates a verifier with the default clock-skew
// tolerance
func NewDefaultGatewayVerifier() *DefaultGatewayVerifier {
	return &DefaultGatewayVerifier{
		maxClockSkew: DefaultMaxClockSkew,
		now:          time.Now,
	}
}

// SetMaxClockSkew sets the tolerance applied to the Date header.
// Zero disables the freshness check.
func (v *DefaultGatewayVerifier) SetMaxClockSkew(d time.Duration) {
	v.maxClockSkew = d
}

// SetClock injects the time source used for the freshness check
func (v *DefaultGatewayVerifier) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	v.now = now
}

// VerifyRequest verifies the signature and body digest of an inbound request
func (v *DefaultGatewayVerifier) VerifyRequest(ctx context.Context, creds *credentials.Credentials, req *http.Request, body []byte) error {
	// Check context
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if creds == nil {
		return fmt.Errorf("credentials cannot be nil")
	}
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}

	raw := req.Header.Get(signer.HeaderSignature)
	if raw == "" {
		return fmt.Errorf("missing Signature header")
	}

	params, err := parseSignature(raw)
	if err != nil {
		return fmt.Errorf("failed to parse Signature header: %w", err)
	}

	if params.Algorithm != signer.Algorithm {
		return fmt.Errorf("unsupported algorithm %q", params.Algorithm)
	}
	if params.KeyID != creds.KeyID() {
		return fmt.Errorf("unknown keyid %q", params.KeyID)
	}

	dateValue := req.Header.Get(signer.HeaderDate)
	if dateValue == "" {
		return fmt.Errorf("missing Date header")
	}
	if err := v.checkFreshness(dateValue); err != nil {
		return err
	}

	// Rebuild the signing string from the transmitted headers, in the order
	// the headers attribute declares them
	lines := make([]string, 0, len(params.Headers))
	for _, name := range params.Headers {
		var value string

		switch name {
		case "host":
			value = req.Host
			if value == "" {
				value = req.Header.Get(signer.HeaderHost)
			}
			if value == "" {
				return fmt.Errorf("host is signed but absent from the request")
			}
		case "date":
			value = dateValue
		case "(request-target)":
			value = strings.ToLower(req.Method) + " " + req.URL.RequestURI()
		case "digest":
			transmitted := req.Header.Get(signer.HeaderDigest)
			if transmitted == "" {
				return fmt.Errorf("digest is signed but Digest header is missing")
			}
			sum := sha256.Sum256(body)
			expected := signer.DigestPrefix + base64.StdEncoding.EncodeToString(sum[:])
			if !hmac.Equal([]byte(expected), []byte(transmitted)) {
				return fmt.Errorf("digest does not match request body")
			}
			value = transmitted
		default:
			return fmt.Errorf("unsupported signed header %q", name)
		}

		lines = append(lines, name+": "+value)
	}

	mac := hmac.New(sha256.New, creds.SecretKey())
	mac.Write([]byte(strings.Join(lines, "\n")))
	expected := mac.Sum(nil)

	provided, err := base64.StdEncoding.DecodeString(params.Signature)
	if err != nil {
		return fmt.Errorf("malformed signature encoding: %w", err)
	}
	if !hmac.Equal(expected, provided) {
		return fmt.Errorf("signature mismatch")
	}

	return nil
}

// checkFreshness rejects dates outside the clock-skew tolerance window
func (v *DefaultGatewayVerifier) checkFreshness(dateValue string) error {
	if v.maxClockSkew == 0 {
		return nil
	}

	sent, err := http.ParseTime(dateValue)
	if err != nil {
		return fmt.Errorf("malformed Date header: %w", err)
	}

	skew := v.now().Sub(sent)
	if skew > v.maxClockSkew || skew < -v.maxClockSkew {
		return fmt.Errorf("date %q outside clock-skew tolerance of %s", dateValue, v.maxClockSkew)
	}

	return nil
}

// parseSignature splits a Signature header value into its attributes
func parseSignature(raw string) (*signatureParams, error) {
	params := &signatureParams{}

	for _, part := range strings.Split(raw, ", ") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("malformed attribute %q", part)
		}
		if len(value) < 2 || !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
			return nil, fmt.Errorf("attribute %q is not double-quoted", name)
		}
		value = value[1 : len(value)-1]

		switch name {
		case "keyid":
			params.KeyID = value
		case "algorithm":
			params.Algorithm = value
		case "headers":
			params.Headers = strings.Fields(value)
		case "signature":
			params.Signature = value
		default:
			return nil, fmt.Errorf("unknown attribute %q", name)
		}
	}

	if params.KeyID == "" || params.Algorithm == "" || len(params.Headers) == 0 || params.Signature == "" {
		return nil, fmt.Errorf("missing required attributes")
	}

	return params, nil
}
