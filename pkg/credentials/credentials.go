package credentials

import (
	"encoding/base64"
	"fmt"
)

// ConfigurationError reports invalid or missing credential material at
// construction time. No signer can be built from credentials that failed
// validation.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid credential configuration: %s: %s", e.Field, e.Reason)
}

// Credentials holds the long-lived signing material for one merchant account:
// the merchant (principal) identifier, the public key identifier, and the
// shared secret HMAC key.
//
// Credentials are immutable after construction and safe to share read-only
// across concurrent callers. The secret key is never logged or serialized.
type Credentials struct {
	merchantID string
	keyID      string
	secretKey  []byte
}

// New validates and constructs credentials. The secret is supplied in its
// transport (standard base64) encoding and decoded exactly once here.
func New(merchantID, keyID, base64Secret string) (*Credentials, error) {
	if merchantID == "" {
		return nil, &ConfigurationError{Field: "merchantID", Reason: "cannot be empty"}
	}
	if keyID == "" {
		return nil, &ConfigurationError{Field: "keyID", Reason: "cannot be empty"}
	}
	if base64Secret == "" {
		return nil, &ConfigurationError{Field: "secretKey", Reason: "cannot be empty"}
	}

	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, &ConfigurationError{Field: "secretKey", Reason: "not valid base64"}
	}

	return &Credentials{
		merchantID: merchantID,
		keyID:      keyID,
		secretKey:  secret,
	}, nil
}

// MerchantID returns the merchant (principal) identifier sent with every
// signed request.
func (c *Credentials) MerchantID() string {
	return c.merchantID
}

// KeyID returns the public key identifier the gateway uses to select the
// shared secret for verification.
func (c *Credentials) KeyID() string {
	return c.keyID
}

// SecretKey returns the decoded HMAC key. The returned slice must not be
// modified.
func (c *Credentials) SecretKey() []byte {
	return c.secretKey
}

// String redacts the secret key.
func (c *Credentials) String() string {
	return fmt.Sprintf("credentials{merchant=%s key=%s secret=REDACTED}", c.merchantID, c.keyID)
}
