// Package metrics exports the computation and button events as Prometheus
// metrics. A Recorder owns its registry, so several instances can coexist in
// one process.
package metrics
