package gridpath

import "errors"

var (
	ErrInvalidDimensions   = errors.New("grid dimensions must be positive")
	ErrInvalidConnectivity = errors.New("connectivity must be 4 or 8")
	ErrOutOfBounds         = errors.New("coordinate out of bounds")
	ErrNegativeWeight      = errors.New("weight must not be negative")
	ErrUnknownAlgorithm    = errors.New("unknown search algorithm")
	ErrNilGraph            = errors.New("graph is nil")
)
