// Package cli runs the panel headless: a spinner shows the live readout
// while simulated presses start and stop the computation, and a summary is
// printed at the end.
package cli
