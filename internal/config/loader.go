package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if WHISPER_CONFIG is set
//  3. env (prefix WHISPER_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("WHISPER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: WHISPER_ADDR, WHISPER_TIER_HIGH, ...
	// Map env keys like WHISPER_TIER_HIGH -> tier_high (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("WHISPER_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "whisper_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.TierHigh <= cfg.TierMedium {
		return nil, fmt.Errorf("%w: tier_high must exceed tier_medium", ErrInvalidConfig)
	}
	return &cfg, nil
}
