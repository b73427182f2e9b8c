// Package server provides HTTP middleware that authenticates inbound
// requests by their gateway signature. It backs the mock gateway used for
// local development and the end-to-end tests.
package server
