// Package config parses the picalc command line and environment into an
// AppConfig. Priority is: command-line flags, then PICALC_* environment
// variables, then defaults.
package config
