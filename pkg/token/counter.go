// Package token generates collision-resistant identifiers.
package token

import "sync/atomic"

// counterSeedMax bounds the random starting value of the counter. The
// seed injects entropy; it is not a security boundary.
const counterSeedMax = 2057

// counter is a process-lifetime monotonic counter. Every call to Next
// observes a distinct value; uint64 wraparound is tolerated and never
// reached in practice.
type counter struct {
	n atomic.Uint64
}

// newCounter returns a counter seeded with a secure random value in
// [0, counterSeedMax].
func newCounter() *counter {
	c := &counter{}
	c.n.Store(uint64(secureInt(0, counterSeedMax)))
	return c
}

// Next atomically advances the counter and returns the pre-increment
// value.
func (c *counter) Next() uint64 {
	return c.n.Add(1) - 1
}
