package isabsolute

import "errors"

// Sentinel errors for classification.
var (
	// ErrInvalidInput indicates a dynamic input that is not a string.
	ErrInvalidInput = errors.New("isabsolute: input is not a string")
)
