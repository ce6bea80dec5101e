package grid

import "strconv"

// Kind tags the variant held by a Cell.
type Kind int

const (
	// Empty is a blank cell ('.' by default).
	Empty Kind = iota
	// Digit is a single decimal digit; Cell.Digit holds its value.
	Digit
	// Marker is any symbol that is neither empty, a digit, nor a gear.
	Marker
	// Gear is the distinguished marker that aggregates the numbers touching it.
	Gear
)

// Cell is one parsed grid position. It is immutable once parsed.
type Cell struct {
	Kind  Kind
	Digit uint8 // valid only when Kind == Digit
}

// IsSymbol reports whether c is a Marker or a Gear.
func (c Cell) IsSymbol() bool {
	return c.Kind == Marker || c.Kind == Gear
}

// String renders c the way the debug dump prints it:
// digits as themselves, gears as '*', other markers as 'S', empties as '.'.
func (c Cell) String() string {
	switch c.Kind {
	case Digit:
		return strconv.Itoa(int(c.Digit))
	case Gear:
		return "*"
	case Marker:
		return "S"
	default:
		return "."
	}
}

// Coord addresses a cell: X is the column, Y the row.
type Coord struct {
	X, Y int
}

// ParseOptions contains the runes with special meaning to Parse.
type ParseOptions struct {
	// Empty is the rune for blank cells.
	Empty rune
	// Gear is the rune for gear cells.
	Gear rune
}

// DefaultParseOptions returns ParseOptions with Empty='.' and Gear='*'.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Empty: '.',
		Gear:  '*',
	}
}

// Validate returns ErrBadOptions when Empty and Gear coincide or either is
// an ASCII digit.
func (o ParseOptions) Validate() error {
	if o.Empty == o.Gear || isDigit(o.Empty) || isDigit(o.Gear) {
		return ErrBadOptions
	}

	return nil
}

// Grid is an ordered sequence of rows of cells. It is immutable once built.
// Rows are expected to share one length, but nothing relies on it:
// every lookup goes through At, which checks the row's own length.
type Grid struct {
	rows  [][]Cell
	width int
}
