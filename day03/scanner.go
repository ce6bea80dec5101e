package day03

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/aoc2023/grid"
)

// Number is one maximal horizontal run of digits found by Scan.
type Number struct {
	// Value is the run read as a decimal int. It is only meaningful when
	// Overflow is false; runs beyond math.MaxInt stop accumulating.
	Value int
	// Row is the run's row; it occupies columns [Start, End).
	Row, Start, End int
	// Part is true when any marker or gear touches the run.
	Part bool
	// Gears lists the distinct gears touching the run, in discovery order.
	Gears []grid.Coord
	// Overflow is true when the run's value exceeds math.MaxInt.
	Overflow bool
}

// Result holds everything a single Scan learns about a grid.
type Result struct {
	// Numbers in scan order (row-major by first digit).
	Numbers []Number
	// Gears maps every gear cell to the numbers touching it. Gears touched by
	// nothing are present with an empty list.
	Gears map[grid.Coord][]int
}

// run accumulates the digits of the number currently being read.
type run struct {
	start    int
	value    int
	overflow bool
	part     bool
	gears    []grid.Coord
}

// push appends digit d to the run's value.
func (r *run) push(d int) {
	if r.overflow || r.value > (math.MaxInt-d)/10 {
		r.overflow = true

		return
	}
	r.value = r.value*10 + d
}

// touch records the markers and gears in column x at rows y-1, y and y+1.
func (r *run) touch(g *grid.Grid, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		c, ok := g.At(x, y+dy)
		if !ok || !c.IsSymbol() {
			continue
		}
		r.part = true
		if c.Kind != grid.Gear {
			continue
		}
		at := grid.Coord{X: x, Y: y + dy}
		if !slices.Contains(r.gears, at) {
			r.gears = append(r.gears, at)
		}
	}
}

// Scan walks g once and returns its numbers and gear registry.
// Cells outside the grid simply have no neighbors. Numbers too large for an
// int are flagged rather than wrapped; see Result.Err.
func Scan(g *grid.Grid) Result {
	res := Result{Gears: make(map[grid.Coord][]int)}
	for _, at := range g.Find(grid.Gear) {
		res.Gears[at] = []int{}
	}

	for y := 0; y < g.Height(); y++ {
		row := g.Row(y)
		var cur *run
		for x, c := range row {
			if c.Kind == grid.Digit {
				if cur == nil {
					cur = &run{start: x}
					cur.touch(g, x-1, y)
				}
				cur.push(int(c.Digit))
				cur.touch(g, x, y)

				continue
			}
			if cur != nil {
				cur.touch(g, x, y)
				res.finish(cur, y, x)
				cur = nil
			}
		}
		// A run reaching the end of its row still has diagonal neighbors
		// one column further in longer rows above or below.
		if cur != nil {
			cur.touch(g, len(row), y)
			res.finish(cur, y, len(row))
		}
	}

	return res
}

func (res *Result) finish(r *run, y, end int) {
	res.Numbers = append(res.Numbers, Number{
		Value:    r.value,
		Row:      y,
		Start:    r.start,
		End:      end,
		Part:     r.part,
		Gears:    r.gears,
		Overflow: r.overflow,
	})
	for _, at := range r.gears {
		res.Gears[at] = append(res.Gears[at], r.value)
	}
}

// Err reports the first number that overflowed int, wrapped in
// ErrNumberTooLarge, or nil when every value is exact.
func (res Result) Err() error {
	for _, n := range res.Numbers {
		if n.Overflow {
			return fmt.Errorf("%w: row %d, columns %d-%d", ErrNumberTooLarge, n.Row, n.Start, n.End-1)
		}
	}

	return nil
}

// PartSum returns the sum of all numbers touching a marker or gear.
func (res Result) PartSum() int {
	sum := 0
	for _, n := range res.Numbers {
		if n.Part {
			sum += n.Value
		}
	}

	return sum
}

// GearRatio returns the product of the two numbers touching the gear at,
// and false when the gear does not touch exactly two numbers.
func (res Result) GearRatio(at grid.Coord) (int, bool) {
	nums := res.Gears[at]
	if len(nums) != 2 {
		return 0, false
	}

	return nums[0] * nums[1], true
}

// GearRatioSum returns the sum of the ratios of all gears touching
// exactly two numbers. Other gears contribute nothing.
func (res Result) GearRatioSum() int {
	sum := 0
	for at := range res.Gears {
		if ratio, ok := res.GearRatio(at); ok {
			sum += ratio
		}
	}

	return sum
}
