// Package config defines the configuration structure for
// idmint-server: HTTP endpoint, mint profiles, security limits and
// logging. Values load through internal/infra/confloader with
// priority Env > File > Default.
package config
