// Package token generates short, collision-resistant, horizontally
// scalable identifiers ("keys") without central coordination.
//
// Each key mixes four entropy sources through a cryptographic hash:
// fresh CSPRNG bytes, a monotonic atomically incremented counter, the
// wall-clock timestamp, and a process fingerprint. The digest is
// rendered in base-36 and prefixed with a random lowercase letter.
//
// Key Format:
//
//   - First character: one lowercase ASCII letter [a-z]
//   - Remaining characters: base-36 digits [0-9a-z]
//   - Total length: configurable, 24 to 32 characters (default 24)
//
// Security:
//
//   - Uses crypto/rand for all randomness
//   - SHA3-256 digest by default, SHA-256 selectable
//   - At least 64 random bytes per key dominate the hash input
//
// A Generator is immutable after construction and safe for use by
// concurrent goroutines; its internal counter is the only shared
// mutable state and is advanced atomically. Keys are not ordered and
// are not UUID-compatible.
package token
