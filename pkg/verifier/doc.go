// Copyright (C) 2026 PaySig Project
//
// This file is part of paysig-go.
//
// paysig-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// paysig-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with paysig-go.  If not, see <https://www.gnu.org/licenses/>.

// Package verifier checks inbound HMAC HTTP signatures.
//
// Verification is the receiving service's half of the signing scheme: it is
// used here by the mock gateway and the end-to-end tests to validate exactly
// what the signer emits.
//
// # Verifying Requests
//
//	v := verifier.NewDefaultGatewayVerifier()
//
//	body, _ := io.ReadAll(req.Body)
//	if err := v.VerifyRequest(ctx, creds, req, body); err != nil {
//	    // reject with 401
//	}
//
// The verifier parses the Signature header's keyid, algorithm, headers and
// signature attributes, rebuilds the signing string from the transmitted
// headers in the declared order, recomputes the HMAC-SHA256 with the shared
// secret, and compares in constant time. When the digest element is signed,
// the body hash is recomputed and compared against the Digest header first.
//
// # Clock Skew
//
// The Date header must fall within a tolerance window (5 minutes by default,
// configurable via SetMaxClockSkew; zero disables the check). This freshness
// rule belongs to the receiver; the signer only stamps current time.
package verifier
