// Package main provides the entry point for idmint-server.
//
// The server exposes an HTTP API for minting collision-resistant keys:
//
//   - POST /v1/keys mints keys from a named profile
//   - GET /v1/profiles lists the configured profiles
//   - GET /health and /ready answer orchestrator probes
//   - GET /metrics exposes Prometheus metrics
//
// Usage:
//
//	idmint-server [flags]
//	idmint-server --config /path/to/config.yaml
//
// The server loads configuration from file and environment, validates
// it, and watches the config file so log-level changes apply without a
// restart.
package main
