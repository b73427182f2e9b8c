package verifier

import (
	"context"
	"net/http"

	"github.com/paysig-project/paysig-go/pkg/credentials"
)

// SignatureVerifier verifies inbound requests signed with the gateway's
// HMAC HTTP-signature scheme
type SignatureVerifier interface {
	// VerifyRequest checks the Signature and Digest headers of req against
	// the shared credentials. body is the already-read request payload;
	// the verifier never consumes req.Body itself.
	VerifyRequest(ctx context.Context, creds *credentials.Credentials, req *http.Request, body []byte) error
}
