// Package timebase provides the elapsed-time readout shown next to the
// running approximation. Ticks arrive through Interrupt, which may be called
// from a timer callback and never blocks; a consumer goroutine started with
// Run folds them into the counter.
package timebase
