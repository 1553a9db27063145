// Package service implements the business logic for idmint.
//
// The mint service owns one key generator per configured profile.
// Generators are built once at startup and shared across all callers,
// matching the generator's one-instance-per-process contract.
package service
