// Package output provides output formatting for idmint-cli.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: Table rendering with wide mode support
//   - json.go: JSON output formatting
//
// Command results render as an aligned table by default; --output json
// switches to indented JSON for scripting.
package output
