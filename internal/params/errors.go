package params

import "errors"

var (
	// ErrUnknownParameter is returned when a key has no registry entry.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrMissingDefault is returned when a key resolves to no value: no
	// source field, no explicit override, and no declared or implicit
	// default.
	ErrMissingDefault = errors.New("parameter has no default value")
)
