// Package config handles application configuration and setup
package config

import (
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger writing to stderr with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	return NewLogger(os.Stderr, debug, quiet)
}

// NewLogger creates a console logger on w. Debug takes precedence over quiet.
func NewLogger(w io.Writer, debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = w
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
