package day02

import "fmt"

// Color is a cube colour.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// ParseColor maps "red", "green" or "blue" to a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// CubeSet counts cubes per colour. It serves both as one draw and as a bag.
type CubeSet struct {
	Red, Green, Blue int
}

// Add increases the count for c by n.
func (s *CubeSet) Add(c Color, n int) {
	switch c {
	case Red:
		s.Red += n
	case Green:
		s.Green += n
	case Blue:
		s.Blue += n
	}
}

// Contains reports whether every count of o fits within s.
func (s CubeSet) Contains(o CubeSet) bool {
	return o.Red <= s.Red && o.Green <= s.Green && o.Blue <= s.Blue
}

// DefaultBag returns the bag of 12 red, 13 green and 14 blue cubes.
func DefaultBag() CubeSet {
	return CubeSet{Red: 12, Green: 13, Blue: 14}
}

// Game is one parsed line: its ID and its draws in order.
type Game struct {
	ID    int
	Draws []CubeSet
}

// Max returns the largest count of each colour over all draws.
func (g Game) Max() CubeSet {
	var m CubeSet
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}

	return m
}

// Possible reports whether every draw of g could come out of bag.
func (g Game) Possible(bag CubeSet) bool {
	return bag.Contains(g.Max())
}

// Power is the product of the per-colour maxima.
func (g Game) Power() int {
	m := g.Max()

	return m.Red * m.Green * m.Blue
}
