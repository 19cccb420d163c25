package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrNotFound = errors.New("entity not found")
)
