// Package supervisor runs a pluggable series worker under a two-state
// (stopped/running) command protocol and hands out consistent snapshots of
// its progress to concurrent readers.
package supervisor
