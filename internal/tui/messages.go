package tui

import (
	"time"

	"github.com/agbru/picalc/internal/orchestration"
)

// ViewMsg carries a refreshed frame from the refresh task.
type ViewMsg orchestration.View

// TickMsg drives the periodic system sampling.
type TickMsg time.Time

// SysStatsMsg carries system-wide CPU and memory usage.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	HeapAlloc  uint64
}

// TasksDoneMsg reports that the background task group returned.
type TasksDoneMsg struct {
	Err error
}

// ContextCancelledMsg is sent when the run context is done.
type ContextCancelledMsg struct {
	Err error
}
