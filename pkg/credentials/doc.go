// Package credentials holds the merchant's long-lived signing secrets.
//
// Credentials are constructed once from configuration, validated eagerly, and
// shared read-only by every signing call:
//
//	creds, err := credentials.New(merchantID, keyID, base64Secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Construction fails with *ConfigurationError when any field is empty or the
// secret is not valid base64, so a half-initialized signer can never exist.
package credentials
