// Package token generates collision-resistant identifiers.
package token

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// secureBytes returns n cryptographically secure random bytes.
//
// A failing CSPRNG is unrecoverable; substituting weaker randomness
// would silently break the collision guarantees, so this panics
// instead of degrading.
func secureBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(fmt.Sprintf("token: secure random source failed: %v", err))
	}
	return b
}

// secureInt returns a uniform random integer in [min, max] inclusive,
// drawn from the CSPRNG.
func secureInt(min, max int64) int64 {
	if min > max {
		panic(fmt.Sprintf("token: invalid range [%d, %d]", min, max))
	}
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		panic(fmt.Sprintf("token: secure random source failed: %v", err))
	}
	return min + n.Int64()
}

// randomLetter returns one lowercase ASCII letter chosen uniformly.
func randomLetter() byte {
	return letters[secureInt(0, int64(len(letters)-1))]
}
