// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strings"
)

// Config is the full runtime configuration.
type Config struct {
	Addr        string
	DataDir     string
	DatabaseURL string

	RecordStoreURL string

	OIDCIssuerURL    string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Default returns the configuration used when the environment sets nothing.
func Default() Config {
	return Config{
		Addr:    ":8080",
		DataDir: "data",
	}
}

// FromEnv overlays environment variables onto base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnv("ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := getEnv("DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := getEnv("DATABASE_URL"); ok {
		cfg.DatabaseURL = v
	}
	if v, ok := getEnv("RECORD_STORE_URL"); ok {
		cfg.RecordStoreURL = v
	}
	if v, ok := getEnv("OIDC_ISSUER_URL"); ok {
		cfg.OIDCIssuerURL = v
	}
	if v, ok := getEnv("OIDC_CLIENT_ID"); ok {
		cfg.OIDCClientID = v
	}
	if v, ok := getEnv("OIDC_CLIENT_SECRET"); ok {
		cfg.OIDCClientSecret = v
	}
	if v, ok := getEnv("OIDC_REDIRECT_URL"); ok {
		cfg.OIDCRedirectURL = v
	}
	return cfg
}

// Load reads the configuration from the environment over the defaults.
func Load() Config {
	return FromEnv(Default())
}

// SSOConfigured reports whether every OIDC setting needed for SSO is present.
func (c Config) SSOConfigured() bool {
	return c.OIDCIssuerURL != "" && c.OIDCClientID != "" && c.OIDCClientSecret != "" && c.OIDCRedirectURL != ""
}

func getEnv(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return "", false
	}
	return v, true
}
