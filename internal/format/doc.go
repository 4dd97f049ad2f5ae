// Package format renders computation state as text for the character
// display, the headless summary and the HTTP snapshot.
package format
