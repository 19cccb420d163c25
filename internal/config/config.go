// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// TierHigh and TierMedium are the match-score cutoffs for the
	// high and medium strength tiers.
	TierHigh   float64 `koanf:"tier_high"`
	TierMedium float64 `koanf:"tier_medium"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		Addr:       ":9080",
		TierHigh:   85,
		TierMedium: 70,
	}
}
