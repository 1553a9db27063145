// Package domain defines the core domain models for idmint.
package domain

import (
	"fmt"
	"strings"

	"github.com/sylvite/idmint-go/pkg/token"
)

// DefaultProfileName is the profile used when a request names none.
const DefaultProfileName = "default"

// MintProfile describes one named key shape served by the mint
// service. A profile maps one-to-one onto a token.Generator built at
// startup.
type MintProfile struct {
	// Name identifies the profile in API requests. Required, unique.
	Name string `json:"name" koanf:"name"`

	// Length is the key length in characters, 24 to 32.
	Length int `json:"length" koanf:"length"`

	// Algorithm is the digest identifier ("sha3-256" or "sha-256").
	Algorithm string `json:"algorithm" koanf:"algorithm"`

	// Fingerprint overrides the derived process fingerprint. Optional;
	// empty means derive.
	Fingerprint string `json:"-" koanf:"fingerprint"`
}

// Normalize fills zero values with defaults and canonicalizes the
// algorithm identifier.
func (p MintProfile) Normalize() MintProfile {
	if p.Length == 0 {
		p.Length = token.DefaultLength
	}
	if p.Algorithm == "" {
		p.Algorithm = token.AlgorithmSHA3256
	}
	p.Algorithm = strings.ToLower(strings.TrimSpace(p.Algorithm))
	p.Name = strings.TrimSpace(p.Name)
	return p
}

// Validate checks the profile definition. Length and algorithm bounds
// mirror the generator's own construction rules so misconfiguration
// fails at startup, not on the first mint.
func (p MintProfile) Validate() error {
	if p.Name == "" {
		return ErrProfileValidation.WithDetails("name is required")
	}
	if p.Length < token.MinLength || p.Length > token.MaxLength {
		return ErrProfileValidation.WithDetails(fmt.Sprintf(
			"profile %q: length %d outside [%d, %d]",
			p.Name, p.Length, token.MinLength, token.MaxLength))
	}
	switch p.Algorithm {
	case token.AlgorithmSHA3256, token.AlgorithmSHA256:
	default:
		return ErrProfileValidation.WithDetails(fmt.Sprintf(
			"profile %q: unknown algorithm %q", p.Name, p.Algorithm))
	}
	return nil
}
