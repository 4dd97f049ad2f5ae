// Package series provides pluggable workers that incrementally evaluate
// convergent series for π, and a registry to create them by kind.
package series
