// Package connection provides the HTTP client idmint-cli uses to talk
// to idmint-server.
//
// The client speaks the server's JSON envelope format: every response
// carries a code, message, request_id and an optional data payload.
// ParseResponse unwraps the envelope and surfaces server error codes
// as Go errors.
package connection
