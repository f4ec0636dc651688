package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds      = errors.New("index out of range")
	ErrEditDeclined     = errors.New("decline edit")
	ErrInteractiveInput = errors.New("INPUT is not supported at the prompt")
)
