package sampledata

import "errors"

// Sentinel kinds for sample data errors.
var (
	ErrInvalidConfig = errors.New("invalid sample data config")
	ErrWriteFailed   = errors.New("failed to write sample data")
)
