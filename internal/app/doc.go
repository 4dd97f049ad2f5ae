// Package app wires configuration, the simulated panel, the metrics server
// and the selected front end (terminal display or headless session) into a
// runnable application.
package app
