package day03

import "errors"

// ErrNumberTooLarge indicates a run of digits whose value does not fit in an int.
var ErrNumberTooLarge = errors.New("day03: number too large")
