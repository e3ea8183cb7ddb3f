package sim

import "errors"

// Domain errors. Out-of-range parameter values are not an error anywhere in
// this package: they are clamped to the declared range.
var (
	// ErrUnknownModel indicates a registry lookup for a name that is not registered.
	ErrUnknownModel = errors.New("sim: unknown model")

	// ErrUnknownParam indicates a write to a parameter the model never declared.
	ErrUnknownParam = errors.New("sim: unknown parameter")
)
