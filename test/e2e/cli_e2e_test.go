package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	tmpDir := t.TempDir()
	binName := "picalc"
	if runtime.GOOS == "windows" {
		binName = "picalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/picalc")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build picalc: %v", err)
	}

	fast := []string{"--headless", "--sample-period=1ms", "--short-press=3ms", "--long-press=20ms", "--refresh=5ms"}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "picalc",
			wantCode: 0,
		},
		{
			name:     "Headless Leibniz",
			args:     append([]string{"--duration=200ms"}, fast...),
			wantOut:  "Result: Leibniz PI: 3.",
			wantCode: 0,
		},
		{
			name:     "Headless Nilakantha Converges",
			args:     append([]string{"--duration=300ms", "--algo=nilakantha"}, fast...),
			wantOut:  "converged=true",
			wantCode: 0,
		},
		{
			name:     "Unknown Algorithm",
			args:     []string{"--algo=wallis"},
			wantOut:  "unknown algorithm",
			wantCode: 4,
		},
		{
			name:     "Presses Too Close",
			args:     []string{"--sample-period=100ms", "--short-press=100ms", "--long-press=150ms"},
			wantOut:  "sample periods apart",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
