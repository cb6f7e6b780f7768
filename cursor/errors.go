package cursor

import "errors"

var (
	// ErrParseInteger indicates a token that should be an integer is not one.
	ErrParseInteger = errors.New("cursor: token is not an integer")
	// ErrEmptyGrid indicates an operation that needs at least one row.
	ErrEmptyGrid = errors.New("cursor: grid has no rows")
)
