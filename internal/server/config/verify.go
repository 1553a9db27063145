// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"

	"github.com/sylvite/idmint-go/internal/core/domain"
)

// Verify validates the configuration. Called once at startup; a
// failing configuration refuses the whole process.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyMint(&cfg.Mint); err != nil {
		return err
	}
	if err := verifySecurity(&cfg.Security); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if (cfg.HTTP.TLSCertFile == "") != (cfg.HTTP.TLSKeyFile == "") {
		return errors.New("server.http: tls_cert_file and tls_key_file must be set together")
	}
	return nil
}

func verifyMint(cfg *MintSection) error {
	if len(cfg.Profiles) == 0 {
		return errors.New("mint.profiles must not be empty")
	}

	seen := make(map[string]struct{}, len(cfg.Profiles))
	hasDefault := false
	for i, p := range cfg.Profiles {
		p = p.Normalize()
		cfg.Profiles[i] = p

		if err := p.Validate(); err != nil {
			return fmt.Errorf("mint.profiles[%d]: %w", i, err)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("mint.profiles: duplicate name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.Name == domain.DefaultProfileName {
			hasDefault = true
		}
	}

	if !hasDefault {
		return fmt.Errorf("mint.profiles: a %q profile is required", domain.DefaultProfileName)
	}
	return nil
}

func verifySecurity(cfg *SecuritySection) error {
	if cfg.RateLimit < 0 {
		return errors.New("security.rate_limit must not be negative")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Level)
	}
	switch cfg.Format {
	case "", "json", "text", "console":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
	return nil
}
