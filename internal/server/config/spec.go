// Package config defines the server configuration structure.
package config

import "github.com/sylvite/idmint-go/internal/core/domain"

// ServerConfig is the root configuration for idmint-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	Mint     MintSection     `koanf:"mint"`
	Security SecuritySection `koanf:"security"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`
}

// MintSection configures the key generator profiles.
type MintSection struct {
	// Profiles lists the named key shapes the server mints. A profile
	// named "default" must be present.
	Profiles []domain.MintProfile `koanf:"profiles"`
}

// SecuritySection configures request limits and CORS.
type SecuritySection struct {
	// RateLimit is the per-IP request budget in requests/second.
	// Zero disables rate limiting.
	RateLimit int `koanf:"rate_limit"`

	// CORSAllowedOrigins lists allowed CORS origins (empty = CORS off).
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
