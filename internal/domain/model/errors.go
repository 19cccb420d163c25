package model

import "errors"

// Sentinel kinds for validation errors.
var (
	ErrValidation = errors.New("validation failed")
)
