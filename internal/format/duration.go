package format

import "time"

// FormatExecutionDuration renders d for run summaries: whole microseconds
// below one millisecond, whole milliseconds otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
