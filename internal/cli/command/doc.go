// Package command provides CLI command definitions for idmint-cli.
//
// Commands:
//
//   - mint: generate keys, locally or via a running server
//   - inspect: check whether a string has the shape of a generated key
//   - profiles: list the profiles a server is configured with
//   - status: check server health
//
// Output format is controlled by the global --output flag (table or
// json).
package command
