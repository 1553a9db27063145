// Package main provides the entry point for idmint-cli.
//
// The CLI generates keys locally or against a running idmint-server:
//
//   - mint: generate keys (local by default, --remote for a server)
//   - inspect: check whether a string has the shape of a generated key
//   - profiles: list a server's configured profiles
//   - status: check server health
//
// Usage:
//
//	idmint-cli [command] [flags]
//	idmint-cli mint --count 5 --length 32
//	idmint-cli --server localhost:5090 profiles
package main
