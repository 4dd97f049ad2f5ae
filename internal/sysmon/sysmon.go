// Package sysmon reads host CPU and memory load for the dashboard footer.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one reading of host load, in percent.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Sampler reads host load through gopsutil. The probe fields can be replaced
// in tests.
type Sampler struct {
	cpuPercent func(ctx context.Context) ([]float64, error)
	memPercent func(ctx context.Context) (float64, error)
}

// NewSampler returns a sampler backed by gopsutil.
func NewSampler() *Sampler {
	return &Sampler{
		// A zero interval reports usage since the previous call.
		cpuPercent: func(ctx context.Context) ([]float64, error) {
			return cpu.PercentWithContext(ctx, 0, false)
		},
		memPercent: func(ctx context.Context) (float64, error) {
			vm, err := mem.VirtualMemoryWithContext(ctx)
			if err != nil {
				return 0, err
			}
			return vm.UsedPercent, nil
		},
	}
}

// Sample takes one reading. A probe that fails leaves its field at zero.
func (s *Sampler) Sample(ctx context.Context) Stats {
	var st Stats
	if pcts, err := s.cpuPercent(ctx); err == nil && len(pcts) > 0 {
		st.CPUPercent = clampPercent(pcts[0])
	}
	if pct, err := s.memPercent(ctx); err == nil {
		st.MemPercent = clampPercent(pct)
	}
	return st
}

var defaultSampler = NewSampler()

// Sample takes one reading with the default sampler.
func Sample(ctx context.Context) Stats {
	return defaultSampler.Sample(ctx)
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
