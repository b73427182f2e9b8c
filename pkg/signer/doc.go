// Package signer derives the authentication headers for outbound payment
// gateway requests.
//
// The gateway validates an HTTP-signature scheme: every request carries a
// Date header, a Digest header covering the body (when one is present), and
// a Signature header whose HMAC binds them all together.
//
// # Signing Requests
//
// Use GatewaySigner to build the header set for an outbound call:
//
//	creds, _ := credentials.New(merchantID, keyID, base64Secret)
//	s := signer.NewDefaultGatewaySigner()
//
//	headers, err := s.SignRequest(ctx, creds, &signer.Request{
//	    Method: "POST",
//	    Path:   "/tms/v2/customers",
//	    Host:   "apitest.example.com",
//	    Body:   payload,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned map holds the Host, Date, Digest (conditional), Signature and
// v-c-merchant-id headers. Merge it unmodified into the outgoing request; the
// signer never touches the transport itself.
//
// # Canonical Signing String
//
// The signed elements, in fixed order:
//
//	host: <host>
//	date: <RFC 1123 date>
//	(request-target): <lowercased method> <path>
//	digest: SHA-256=<base64(sha256(body))>
//
// The digest line is included only when the body is non-empty. The lines are
// joined with \n (no trailing newline) and HMAC-SHA256-signed with the
// credential's decoded secret key.
//
// # Signature Wire Format
//
// The Signature header value is a structured string:
//
//	keyid="<keyId>", algorithm="HmacSHA256", headers="<names space-joined>", signature="<base64 HMAC>"
//
// The headers attribute lists exactly the element names that were signed, in
// the order they appear in the signing string. Both are produced from one
// ordered element slice so they can never disagree.
//
// # Deterministic Testing
//
// The date element is the only time-dependent output. Inject a fixed clock to
// assert exact signing-string contents:
//
//	fixed := time.Date(2026, time.January, 15, 8, 12, 31, 0, time.UTC)
//	s := signer.NewDefaultGatewaySignerWithClock(func() time.Time { return fixed })
//
// # Error Handling
//
// Signing failures are local and synchronous; a partially-built header set is
// never returned:
//
//   - *InvalidRequestError: unrecognized method, path without leading "/",
//     empty host, nil request
//   - *SigningError: nil credentials or empty secret key
//
// Retry policy belongs to the HTTP transport, not here.
package signer
