// Package domain defines the core domain models for idmint: mint
// profiles and the structured error taxonomy shared by the service
// layer, HTTP handlers and CLI.
package domain
