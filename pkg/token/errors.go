// Package token generates collision-resistant identifiers.
package token

import "errors"

// Construction errors. All validation happens in New; Generate has no
// error path once a Generator exists.
var (
	// ErrInvalidLength indicates the configured length is outside [24, 32].
	ErrInvalidLength = errors.New("token: length must be between 24 and 32")

	// ErrInvalidFingerprint indicates an empty fingerprint. This includes
	// the derived default when the environment yields no identity string;
	// callers must then supply one explicitly.
	ErrInvalidFingerprint = errors.New("token: fingerprint must not be empty")

	// ErrUnsupportedAlgorithm indicates the algorithm identifier is not
	// one of the recognized digests.
	ErrUnsupportedAlgorithm = errors.New("token: unsupported hash algorithm")

	// ErrAlgorithmUnavailable indicates a recognized algorithm has no
	// digest implementation registered in this build.
	ErrAlgorithmUnavailable = errors.New("token: hash algorithm unavailable")
)
