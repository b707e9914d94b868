package entities

import "errors"

// Domain errors
var (
	// Model errors
	ErrModelUnavailable = errors.New("model unavailable")
	ErrLowConfidence    = errors.New("classification confidence below threshold")

	// Input errors
	ErrEmptyInput = errors.New("empty input text")
)
