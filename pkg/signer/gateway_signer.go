package signer

import (
	"context"
	"time"

	"github.com/paysig-project/paysig-go/pkg/credentials"
)

// Wire header names fixed by the gateway's contract.
const (
	HeaderMerchantID = "v-c-merchant-id"
	HeaderDate       = "Date"
	HeaderDigest     = "Digest"
	HeaderHost       = "Host"
	HeaderSignature  = "Signature"
)

const (
	// Algorithm is the value of the signature's algorithm attribute
	Algorithm = "HmacSHA256"

	// DigestPrefix precedes the base64 body hash in the Digest header
	DigestPrefix = "SHA-256="
)

// GatewaySigner signs outbound gateway requests with keyed HTTP signatures.
// The returned header map must be merged, unmodified, into the outgoing
// HTTP request by the transport.
type GatewaySigner interface {
	// SignRequest signs a request, stamping the current time as the date
	// element of the signing string
	SignRequest(ctx context.Context, creds *credentials.Credentials, req *Request) (map[string]string, error)

	// SignRequestWithOptions signs a request with custom options
	SignRequestWithOptions(ctx context.Context, creds *credentials.Credentials, req *Request, opts *SigningOptions) (map[string]string, error)
}

// Request describes one outbound call to be signed. It is ephemeral: one per
// call, never persisted.
type Request struct {
	// Method is the HTTP verb (GET, POST, PUT, PATCH or DELETE)
	Method string

	// Path is the request path including any query string, starting with "/"
	Path string

	// Host is the gateway host the request is addressed to
	Host string

	// Body is the raw request payload. A zero-length body signs like no
	// body at all: no digest element and no Digest header.
	Body []byte
}

// SigningOptions contains options for signing requests
type SigningOptions struct {
	// Date is the signing instant used for the date element.
	// If zero, current time is used.
	Date time.Time
}
