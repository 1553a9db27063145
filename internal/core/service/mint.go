// Package service implements the business logic for idmint.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sylvite/idmint-go/internal/core/domain"
	"github.com/sylvite/idmint-go/internal/telemetry/logger"
	"github.com/sylvite/idmint-go/internal/telemetry/metric"
	"github.com/sylvite/idmint-go/pkg/token"
)

// MaxMintCount bounds the number of keys minted per request.
const MaxMintCount = 1000

// MintService mints keys from named generator profiles.
type MintService struct {
	generators map[string]*token.Generator
	profiles   map[string]domain.MintProfile
	logger     logger.Logger
	metrics    *metric.Registry
}

// MintRequest is a request to mint keys.
type MintRequest struct {
	// Profile names the generator profile; empty selects "default".
	Profile string

	// Count is the number of keys to mint; zero means one.
	Count int
}

// MintResponse carries the minted keys.
type MintResponse struct {
	Profile string
	Keys    []string
}

// NewMintService builds a generator per profile and returns the
// service. Profile definitions are validated here so a misconfigured
// server refuses to start instead of failing on the first request.
func NewMintService(profiles []domain.MintProfile, log logger.Logger, metrics *metric.Registry) (*MintService, error) {
	if len(profiles) == 0 {
		return nil, domain.ErrProfileValidation.WithDetails("at least one profile is required")
	}
	if log == nil {
		log = logger.Default()
	}

	s := &MintService{
		generators: make(map[string]*token.Generator, len(profiles)),
		profiles:   make(map[string]domain.MintProfile, len(profiles)),
		logger:     log,
		metrics:    metrics,
	}

	for _, p := range profiles {
		p = p.Normalize()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.generators[p.Name]; dup {
			return nil, domain.ErrProfileConflict.WithDetails(p.Name)
		}

		opts := []token.Option{
			token.WithLength(p.Length),
			token.WithAlgorithm(p.Algorithm),
		}
		if p.Fingerprint != "" {
			opts = append(opts, token.WithFingerprint(p.Fingerprint))
		}

		gen, err := token.New(opts...)
		if err != nil {
			return nil, domain.ErrProfileValidation.
				WithDetails(fmt.Sprintf("profile %q", p.Name)).
				WithCause(err)
		}

		s.generators[p.Name] = gen
		s.profiles[p.Name] = p

		log.Info("mint profile ready",
			"profile", p.Name,
			"length", p.Length,
			"algorithm", p.Algorithm)
	}

	if _, ok := s.generators[domain.DefaultProfileName]; !ok {
		return nil, domain.ErrProfileValidation.
			WithDetails(fmt.Sprintf("a %q profile is required", domain.DefaultProfileName))
	}

	return s, nil
}

// Mint produces req.Count keys from the named profile.
func (s *MintService) Mint(ctx context.Context, req *MintRequest) (*MintResponse, error) {
	name := req.Profile
	if name == "" {
		name = domain.DefaultProfileName
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxMintCount {
		return nil, domain.ErrCountOutOfRange.
			WithDetails(fmt.Sprintf("count %d outside [1, %d]", count, MaxMintCount))
	}

	gen, ok := s.generators[name]
	if !ok {
		return nil, domain.ErrProfileNotFound.WithDetails(name)
	}

	start := time.Now()
	keys := make([]string, count)
	for i := range keys {
		keys[i] = gen.Generate()
	}

	if s.metrics != nil {
		s.metrics.ObserveMint(name, count, time.Since(start))
	}
	logger.L(ctx).Debug("minted keys", "profile", name, "count", count)

	return &MintResponse{Profile: name, Keys: keys}, nil
}

// Profiles returns all profile definitions, sorted by name.
func (s *MintService) Profiles() []domain.MintProfile {
	out := make([]domain.MintProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Describe returns one profile definition by name.
func (s *MintService) Describe(name string) (domain.MintProfile, error) {
	if name == "" {
		name = domain.DefaultProfileName
	}
	p, ok := s.profiles[name]
	if !ok {
		return domain.MintProfile{}, domain.ErrProfileNotFound.WithDetails(name)
	}
	return p, nil
}
