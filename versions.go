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

// Package paysig provides version information for paysig-go and the gateway
// API surface it targets.
package paysig

const (
	// Version is the current version of paysig-go
	Version = "1.0.0"

	// TMSAPIVersion is the Token Management Service API version the typed
	// resource clients are built against
	TMSAPIVersion = "v2"

	// SignatureScheme is the HTTP signature scheme the gateway validates
	SignatureScheme = "HmacSHA256"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	PaySigVersion   string
	TMSAPIVersion   string
	SignatureScheme string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		PaySigVersion:   Version,
		TMSAPIVersion:   TMSAPIVersion,
		SignatureScheme: SignatureScheme,
	}
}
