package signer

// InvalidRequestError reports a malformed signing request: an unrecognized
// method, a path without a leading slash, or a missing host. The request is
// never sent.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid signing request: " + e.Reason
}

// SigningError reports a failure of the signing step itself, such as an empty
// secret key. Signing is deterministic, so this is a configuration or
// programmer error, never a transient condition worth retrying.
type SigningError struct {
	Reason string
}

func (e *SigningError) Error() string {
	return "signing failed: " + e.Reason
}
