// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - All functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
)

// Config contains process configuration.
//
// The leaderboard cutoff is intentionally absent: it is a fixed property of the
// report, not a tunable.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsFile, when set, receives a Prometheus textfile export after each run.
	MetricsFile string `koanf:"metrics_file"`

	// MetricsNamespace prefixes every exported metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "warn",
		MetricsFile:      "",
		MetricsNamespace: "playrank",
	}
}
