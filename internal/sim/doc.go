// Package sim provides a scripted button.InputPort for hosts without
// physical buttons. Presses are queued per line as runs of active samples and
// replayed one sample per debounce tick.
package sim
