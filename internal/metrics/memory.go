package metrics

import "runtime"

// HeapStats is the subset of runtime memory statistics shown on the
// dashboard and exported as gauges.
type HeapStats struct {
	Alloc   uint64
	Objects uint64
	GCRuns  uint32
}

// ReadHeap returns the current heap statistics. It stops the world briefly,
// so callers sample it at dashboard or scrape rates only.
func ReadHeap() HeapStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return HeapStats{Alloc: m.HeapAlloc, Objects: m.HeapObjects, GCRuns: m.NumGC}
}
