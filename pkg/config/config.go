package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/paysig-project/paysig-go/pkg/credentials"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by FromEnv
const (
	EnvMerchantID = "PAYSIG_MERCHANT_ID"
	EnvKeyID      = "PAYSIG_KEY_ID"
	EnvSecretKey  = "PAYSIG_SECRET_KEY"
	EnvHost       = "PAYSIG_HOST"
	EnvScheme     = "PAYSIG_SCHEME"
)

// Config holds the merchant configuration supplied to the SDK. SecretKey is
// the base64-encoded shared secret; it is decoded by Credentials(), never
// here.
type Config struct {
	MerchantID string `yaml:"merchant_id"`
	KeyID      string `yaml:"key_id"`
	SecretKey  string `yaml:"secret_key"`
	Host       string `yaml:"host"`
	Scheme     string `yaml:"scheme"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv reads configuration from the environment, loading a .env file
// first when one exists
func FromEnv() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MerchantID: os.Getenv(EnvMerchantID),
		KeyID:      os.Getenv(EnvKeyID),
		SecretKey:  os.Getenv(EnvSecretKey),
		Host:       os.Getenv(EnvHost),
		Scheme:     os.Getenv(EnvScheme),
	}

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Scheme == "" {
		c.Scheme = "https"
	}
}

// Validate checks that every required field is present
func (c *Config) Validate() error {
	if c.MerchantID == "" {
		return fmt.Errorf("merchant_id is required")
	}
	if c.KeyID == "" {
		return fmt.Errorf("key_id is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret_key is required")
	}
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

// Credentials builds the immutable credential context from this
// configuration
func (c *Config) Credentials() (*credentials.Credentials, error) {
	return credentials.New(c.MerchantID, c.KeyID, c.SecretKey)
}
