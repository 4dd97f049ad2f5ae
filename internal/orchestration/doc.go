// Package orchestration wires the debouncer, the time base, the supervisor
// and a presenter into one task group. The Controller turns debounced button
// classifications into supervisor commands; Run drives every periodic task
// until the context is cancelled. It decouples the computation from
// presentation through the Presenter interface.
package orchestration
