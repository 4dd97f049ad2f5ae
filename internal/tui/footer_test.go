package tui

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1024*1024 - 1, "1024.0 KB"},
		{1024 * 1024, "1.0 MB"},
		{3 << 30, "3.0 GB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.input); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFooterModel_UpdateSysStats(t *testing.T) {
	f := NewFooterModel(DefaultKeyMap())
	for i := 0; i < sysHistory+5; i++ {
		f.UpdateSysStats(SysStatsMsg{CPUPercent: float64(i), MemPercent: 50})
	}
	if f.cpu.Len() != sysHistory {
		t.Errorf("cpu history = %d, want %d", f.cpu.Len(), sysHistory)
	}
	if f.cpu.Last() != float64(sysHistory+4) {
		t.Errorf("last cpu = %v", f.cpu.Last())
	}
}
