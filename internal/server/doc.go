// Package server exposes the running computation over HTTP: Prometheus
// metrics on /metrics, a JSON snapshot on /snapshot and a liveness probe on
// /healthz.
package server
