package grid

import (
	"strings"
)

// Parse builds a Grid from raw multi-line text.
// Each non-empty line becomes one row (a trailing '\r' is dropped); each rune
// becomes one Cell. Parse never fails on text: every rune maps to some Cell.
// Returns ErrBadOptions if opts.Empty == opts.Gear or either is a digit.
// Complexity: O(N) time and memory.
func Parse(text string, opts ParseOptions) (*Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			row = append(row, classify(r, opts))
		}
		if len(row) > g.width {
			g.width = len(row)
		}
		g.rows = append(g.rows, row)
	}

	return g, nil
}

func classify(r rune, opts ParseOptions) Cell {
	switch {
	case r == opts.Empty:
		return Cell{Kind: Empty}
	case r == opts.Gear:
		return Cell{Kind: Gear}
	case isDigit(r):
		return Cell{Kind: Digit, Digit: uint8(r - '0')}
	default:
		return Cell{Kind: Marker}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the length of the longest row.
func (g *Grid) Width() int {
	return g.width
}

// Row returns row y, or nil when y is out of range.
// The returned slice must not be modified.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= len(g.rows) {
		return nil
	}

	return g.rows[y]
}

// InBounds reports whether (x,y) addresses a cell of its own row.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g.rows) && x >= 0 && x < len(g.rows[y])
}

// At returns the cell at (x,y) and true, or the zero Cell and false when
// (x,y) is outside the grid. Boundaries never wrap around.
// Complexity: O(1).
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}

	return g.rows[y][x], true
}

// Find returns the coordinates of every cell of the given kind, row-major.
func (g *Grid) Find(kind Kind) []Coord {
	var found []Coord
	for y, row := range g.rows {
		for x, c := range row {
			if c.Kind == kind {
				found = append(found, Coord{X: x, Y: y})
			}
		}
	}

	return found
}

// String renders the grid one row per line using Cell.String.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(c.String())
		}
	}

	return sb.String()
}
