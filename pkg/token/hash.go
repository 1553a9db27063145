// Package token generates collision-resistant identifiers.
package token

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Supported hash algorithm identifiers. Matching is case-insensitive;
// identifiers are normalized to lowercase.
const (
	AlgorithmSHA3256 = "sha3-256"
	AlgorithmSHA256  = "sha-256"
)

// biasDrop is the number of leading base-36 characters discarded from
// every digest encoding. The leading characters of the encoding skew
// toward a narrow subset of values, which degrades distribution
// quality; dropping them compensates.
const biasDrop = 2

// blockWidth is the guaranteed minimum width of a hash block before
// truncation. A 256-bit digest encodes to 49 or 50 base-36 digits, so
// after discarding biasDrop characters the block always covers the
// maximum configured length.
const blockWidth = biasDrop + MaxLength

// digestFunc computes a fixed-size digest of the input bytes.
type digestFunc func([]byte) []byte

// digests maps normalized algorithm identifiers to implementations.
var digests = map[string]digestFunc{
	AlgorithmSHA3256: func(b []byte) []byte {
		h := sha3.Sum256(b)
		return h[:]
	},
	AlgorithmSHA256: func(b []byte) []byte {
		h := sha256.Sum256(b)
		return h[:]
	},
}

// lookupDigest resolves an algorithm identifier to its implementation.
func lookupDigest(algorithm string) (digestFunc, error) {
	normalized := strings.ToLower(strings.TrimSpace(algorithm))
	if normalized != AlgorithmSHA3256 && normalized != AlgorithmSHA256 {
		return nil, ErrUnsupportedAlgorithm
	}
	fn, ok := digests[normalized]
	if !ok || fn == nil {
		return nil, ErrAlgorithmUnavailable
	}
	return fn, nil
}

// hashBlock digests the input and encodes the result as a base-36
// string of at least MaxLength characters, bias-corrected.
func hashBlock(digest digestFunc, input []byte) string {
	n := new(big.Int).SetBytes(digest(input))
	encoded := n.Text(36)

	// Zero-pad the astronomically rare short encodings so the length
	// guarantee is unconditional.
	if len(encoded) < blockWidth {
		encoded = strings.Repeat("0", blockWidth-len(encoded)) + encoded
	}

	return encoded[biasDrop:]
}
