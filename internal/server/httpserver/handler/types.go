// Package handler provides HTTP request handlers for idmint.
package handler

import "time"

// Response is the standard API response envelope. All JSON responses
// use this format (except /metrics, which is Prometheus text format).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
	}
}

// MintKeysRequest is the request body for POST /v1/keys.
type MintKeysRequest struct {
	Profile string `json:"profile,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// MintKeysResponse is the response body for POST /v1/keys.
type MintKeysResponse struct {
	Profile string   `json:"profile"`
	Keys    []string `json:"keys"`
}

// ProfileResponse represents a mint profile in API responses.
type ProfileResponse struct {
	Name      string `json:"name"`
	Length    int    `json:"length"`
	Algorithm string `json:"algorithm"`
}

// ListProfilesResponse is the response body for GET /v1/profiles.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}
