// Package config loads merchant configuration from YAML files or the
// environment and bridges it into the credential context.
package config
