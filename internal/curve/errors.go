package curve

import "errors"

// Domain errors for curve parameter handling.
var (
	// ErrInvalidParameter indicates a rejected parameter triple.
	// The stored parameters are left untouched when this is returned.
	ErrInvalidParameter = errors.New("curve: invalid parameter")
)
