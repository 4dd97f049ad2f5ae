// Package ui holds the color themes shared by the terminal display and the
// headless output. It is the only place that decides whether output is
// colored, so presentation packages never read NO_COLOR themselves.
package ui
