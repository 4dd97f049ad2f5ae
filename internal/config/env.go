package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// explicitFlags returns the names of the flags given on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the PICALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
// Values that fail to parse are ignored.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func durationOverride(key, flagName string, field func(*AppConfig) *time.Duration) envOverride {
	return envOverride{key, []string{flagName}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			*field(c) = parsed
		}
	}}
}

func boolOverride(key string, flags []string, field func(*AppConfig) *bool) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"EPSILON", []string{"epsilon"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Epsilon = parsed
		}
	}},

	// Duration overrides
	durationOverride("SHORT_PRESS", "short-press", func(c *AppConfig) *time.Duration { return &c.ShortPress }),
	durationOverride("LONG_PRESS", "long-press", func(c *AppConfig) *time.Duration { return &c.LongPress }),
	durationOverride("PRESS_TIMEOUT", "press-timeout", func(c *AppConfig) *time.Duration { return &c.PressTimeout }),
	durationOverride("SAMPLE_PERIOD", "sample-period", func(c *AppConfig) *time.Duration { return &c.SamplePeriod }),
	durationOverride("REFRESH", "refresh", func(c *AppConfig) *time.Duration { return &c.Refresh }),
	durationOverride("SETTLE", "settle", func(c *AppConfig) *time.Duration { return &c.Settle }),
	durationOverride("DURATION", "duration", func(c *AppConfig) *time.Duration { return &c.Duration }),

	// String overrides
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) {
		c.Algo = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},
	{"LOG_FILE", []string{"log-file"}, func(c *AppConfig, v string) {
		c.LogFile = v
	}},

	// Boolean overrides
	boolOverride("STOP_TIMER", []string{"stop-timer"}, func(c *AppConfig) *bool { return &c.StopTimer }),
	boolOverride("HEADLESS", []string{"headless"}, func(c *AppConfig) *bool { return &c.Headless }),
	boolOverride("VERBOSE", []string{"v", "verbose"}, func(c *AppConfig) *bool { return &c.Verbose }),
	boolOverride("NO_COLOR", []string{"no-color"}, func(c *AppConfig) *bool { return &c.NoColor }),
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with PICALC_):
//   - ALGO, EPSILON, SHORT_PRESS, LONG_PRESS, PRESS_TIMEOUT, SAMPLE_PERIOD,
//     REFRESH, SETTLE, DURATION, METRICS_ADDR, LOG_FILE, STOP_TIMER, HEADLESS,
//     VERBOSE, NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	given := explicitFlags(fs)
next:
	for _, o := range envOverrides {
		for _, name := range o.flags {
			if given[name] {
				continue next
			}
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
