package session

import (
	"os"
	"strings"
	"time"
)

// Config defines runtime configuration for the session subsystem.
type Config struct {
	// Issuer is the value set in the "iss" claim of issued credentials.
	Issuer string

	// TokenTTL is the absolute credential lifetime from issuance.
	TokenTTL time.Duration

	// SecretKey is the server-wide secret mixed into every derived
	// per-session secret. Required.
	SecretKey []byte
}

// DefaultConfig returns defaults suitable for development.
// SecretKey must still be provided before use.
func DefaultConfig() Config {
	return Config{
		Issuer:   "marketplace",
		TokenTTL: 4 * 7 * 24 * time.Hour,
	}
}

// LoadConfigFromEnv loads session configuration from environment variables.
//
// Required:
//   - MARKETPLACE_SECRET_KEY
//
// Optional:
//   - MARKETPLACE_TOKEN_ISSUER
//   - MARKETPLACE_TOKEN_TTL (Go duration string)
//
// Returns ErrConfig if configuration is invalid.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MARKETPLACE_TOKEN_ISSUER"); v != "" {
		cfg.Issuer = v
	}

	if v := os.Getenv("MARKETPLACE_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, ErrConfig
		}
		cfg.TokenTTL = d
	}

	secret := strings.TrimSpace(os.Getenv("MARKETPLACE_SECRET_KEY"))
	if secret == "" {
		return Config{}, ErrConfig
	}
	cfg.SecretKey = []byte(secret)

	return cfg, nil
}
