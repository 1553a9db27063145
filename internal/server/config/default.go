// Package config defines the server configuration structure.
package config

import (
	"github.com/sylvite/idmint-go/internal/core/domain"
	"github.com/sylvite/idmint-go/pkg/token"
)

// Default configuration values.
const (
	DefaultHTTPAddr = "127.0.0.1:5090"

	DefaultRateLimit = 100

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration: one "default"
// profile with the generator's own defaults.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr: DefaultHTTPAddr,
			},
		},
		Mint: MintSection{
			Profiles: []domain.MintProfile{
				{
					Name:      domain.DefaultProfileName,
					Length:    token.DefaultLength,
					Algorithm: token.AlgorithmSHA3256,
				},
			},
		},
		Security: SecuritySection{
			RateLimit: DefaultRateLimit,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
