package grid

import "errors"

var (
	// ErrBadOptions indicates ParseOptions that cannot produce a meaningful grid.
	ErrBadOptions = errors.New("grid: invalid parse options")
)
