package config

import (
	"errors"
)

// Error kinds callers can test with errors.Is. Loader failures wrap
// ErrLoadConfig; values that parse but fail validation wrap ErrInvalidConfig.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
