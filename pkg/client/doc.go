// Package client provides an HTTP client with automatic request signing.
//
// GatewayClient wraps a standard *http.Client: every request is passed
// through the signer, the resulting header map is merged unmodified, a
// correlation id is stamped, and the request is executed.
//
//	creds, _ := credentials.New(merchantID, keyID, base64Secret)
//	c := client.NewGatewayClient(creds, "apitest.example.com", nil)
//
//	resp, err := c.Post(ctx, "/tms/v2/customers", payload)
//
// Retry policy, redirects and TLS configuration belong to the injected
// *http.Client; this package never retries a signing or transport failure.
package client
