package day02

import "errors"

var (
	// ErrMalformedGame indicates a line without a "Game N:" header.
	ErrMalformedGame = errors.New("day02: malformed game line")
	// ErrUnknownColor indicates a cube colour other than red, green or blue.
	ErrUnknownColor = errors.New("day02: unknown cube color")
	// ErrBadGenOptions indicates non-positive generator bounds.
	ErrBadGenOptions = errors.New("day02: invalid generator options")
)
