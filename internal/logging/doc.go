// Package logging provides a unified logging interface for the π demo.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the debouncer, the supervisor and the presentation layers while
// supporting multiple backends.
package logging
