package sysmon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_Host(t *testing.T) {
	s := Sample(context.Background())
	assert.GreaterOrEqual(t, s.CPUPercent, 0.0)
	assert.LessOrEqual(t, s.CPUPercent, 100.0)
	assert.Greater(t, s.MemPercent, 0.0, "a running host uses some memory")
	assert.LessOrEqual(t, s.MemPercent, 100.0)
}

func TestSampler_ClampsAndToleratesErrors(t *testing.T) {
	tests := []struct {
		name string
		cpu  func(context.Context) ([]float64, error)
		mem  func(context.Context) (float64, error)
		want Stats
	}{
		{
			name: "in range",
			cpu:  func(context.Context) ([]float64, error) { return []float64{12.5}, nil },
			mem:  func(context.Context) (float64, error) { return 40, nil },
			want: Stats{CPUPercent: 12.5, MemPercent: 40},
		},
		{
			name: "clamped",
			cpu:  func(context.Context) ([]float64, error) { return []float64{130}, nil },
			mem:  func(context.Context) (float64, error) { return -1, nil },
			want: Stats{CPUPercent: 100, MemPercent: 0},
		},
		{
			name: "probe failures",
			cpu:  func(context.Context) ([]float64, error) { return nil, errors.New("no cpu") },
			mem:  func(context.Context) (float64, error) { return 0, errors.New("no mem") },
			want: Stats{},
		},
		{
			name: "empty cpu reading",
			cpu:  func(context.Context) ([]float64, error) { return nil, nil },
			mem:  func(context.Context) (float64, error) { return 55, nil },
			want: Stats{MemPercent: 55},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sampler{cpuPercent: tt.cpu, memPercent: tt.mem}
			assert.Equal(t, tt.want, s.Sample(context.Background()))
		})
	}
}
