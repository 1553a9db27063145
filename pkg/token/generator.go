// Package token generates collision-resistant identifiers.
package token

import (
	"strconv"
	"strings"
	"time"
)

// Key length bounds.
const (
	// MinLength is the shortest permitted key length.
	MinLength = 24

	// MaxLength is the longest permitted key length.
	MaxLength = 32

	// DefaultLength is the key length used when none is configured.
	DefaultLength = 24
)

// entropyBytes is the number of fresh CSPRNG bytes hashed per key.
// Twice the maximum key length, so randomness dominates the smaller
// timestamp, counter and fingerprint contributions.
const entropyBytes = 2 * MaxLength

// Generator produces keys. It is immutable after construction and safe
// to share across concurrent goroutines; create one per process and
// reuse it. The internal counter resets on process restart, which is
// an accepted tradeoff of coordination-free generation.
type Generator struct {
	length      int
	fingerprint string
	algorithm   string
	digest      digestFunc
	counter     *counter
}

// Option configures a Generator.
type Option func(*settings)

type settings struct {
	length         int
	fingerprint    string
	fingerprintSet bool
	algorithm      string
}

// WithLength sets the key length. Must be in [MinLength, MaxLength].
func WithLength(length int) Option {
	return func(s *settings) {
		s.length = length
	}
}

// WithFingerprint overrides the derived process fingerprint.
func WithFingerprint(fingerprint string) Option {
	return func(s *settings) {
		s.fingerprint = fingerprint
		s.fingerprintSet = true
	}
}

// WithAlgorithm selects the digest: AlgorithmSHA3256 or
// AlgorithmSHA256 (case-insensitive).
func WithAlgorithm(algorithm string) Option {
	return func(s *settings) {
		s.algorithm = algorithm
	}
}

// New constructs a Generator. All validation happens here; Generate
// never re-validates and has no error path.
func New(opts ...Option) (*Generator, error) {
	s := &settings{
		length:    DefaultLength,
		algorithm: AlgorithmSHA3256,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.length < MinLength || s.length > MaxLength {
		return nil, ErrInvalidLength
	}

	fingerprint := s.fingerprint
	if !s.fingerprintSet {
		fingerprint = defaultFingerprint()
	}
	if fingerprint == "" {
		return nil, ErrInvalidFingerprint
	}

	digest, err := lookupDigest(s.algorithm)
	if err != nil {
		return nil, err
	}

	return &Generator{
		length:      s.length,
		fingerprint: fingerprint,
		algorithm:   normalizeAlgorithm(s.algorithm),
		digest:      digest,
		counter:     newCounter(),
	}, nil
}

// Generate returns a new key: one random lowercase letter followed by
// base-36 digits, exactly Length characters total.
//
// Each call advances the counter once and draws fresh CSPRNG bytes.
// If the platform's secure random source can block (entropy
// starvation), Generate blocks with it rather than falling back to
// weaker randomness.
func (g *Generator) Generate() string {
	input := secureBytes(entropyBytes)
	input = strconv.AppendInt(input, time.Now().UnixMilli(), 10)
	input = strconv.AppendUint(input, g.counter.Next(), 10)
	input = append(input, g.fingerprint...)

	key := string(randomLetter()) + hashBlock(g.digest, input)
	return key[:g.length]
}

// Length returns the configured key length.
func (g *Generator) Length() int {
	return g.length
}

// Algorithm returns the normalized digest identifier.
func (g *Generator) Algorithm() string {
	return g.algorithm
}

// Fingerprint returns the process fingerprint mixed into every key.
func (g *Generator) Fingerprint() string {
	return g.fingerprint
}

// normalizeAlgorithm lowercases and trims an algorithm identifier.
func normalizeAlgorithm(algorithm string) string {
	return strings.ToLower(strings.TrimSpace(algorithm))
}
