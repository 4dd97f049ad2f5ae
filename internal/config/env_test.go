package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBoolEnv(tt.in, tt.def), tt.in)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PICALC_ALGO", "nilakantha")
	t.Setenv("PICALC_EPSILON", "1e-6")
	t.Setenv("PICALC_SHORT_PRESS", "40ms")
	t.Setenv("PICALC_REFRESH", "250ms")
	t.Setenv("PICALC_HEADLESS", "yes")
	t.Setenv("PICALC_STOP_TIMER", "0")
	t.Setenv("PICALC_METRICS_ADDR", "127.0.0.1:9100")
	t.Setenv("PICALC_LOG_FILE", "/tmp/picalc.log")

	cfg, err := ParseConfig("picalc", nil, &bytes.Buffer{}, algos)
	require.NoError(t, err)
	assert.Equal(t, "nilakantha", cfg.Algo)
	assert.Equal(t, 1e-6, cfg.Epsilon)
	assert.Equal(t, 40*time.Millisecond, cfg.ShortPress)
	assert.Equal(t, 250*time.Millisecond, cfg.Refresh)
	assert.True(t, cfg.Headless)
	assert.False(t, cfg.StopTimer)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
	assert.Equal(t, "/tmp/picalc.log", cfg.LogFile)
}

func TestEnvOverrides_FlagsWin(t *testing.T) {
	t.Setenv("PICALC_ALGO", "nilakantha")
	t.Setenv("PICALC_VERBOSE", "true")

	cfg, err := ParseConfig("picalc", []string{"--algo", "leibniz", "--verbose=false"}, &bytes.Buffer{}, algos)
	require.NoError(t, err)
	assert.Equal(t, "leibniz", cfg.Algo)
	assert.False(t, cfg.Verbose)
}

func TestEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PICALC_LONG_PRESS", "soon")
	t.Setenv("PICALC_EPSILON", "tiny")

	cfg, err := ParseConfig("picalc", nil, &bytes.Buffer{}, algos)
	require.NoError(t, err)
	assert.Equal(t, DefaultLongPress, cfg.LongPress)
	assert.Equal(t, DefaultEpsilon, cfg.Epsilon)
}

func TestEnvOverrides_ValidatedAfterApply(t *testing.T) {
	t.Setenv("PICALC_SAMPLE_PERIOD", "1s")
	_, err := ParseConfig("picalc", nil, &bytes.Buffer{}, algos)
	assert.Error(t, err, "press lengths shorter than two periods must be rejected")
}
