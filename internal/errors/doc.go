// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// rejected supervisor transitions, unconfigured button lines) and for
// carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Structured types implement Is() so that errors.Is() matches their sentinels.
package apperrors
