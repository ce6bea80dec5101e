package day03

import (
	"github.com/katalvlaran/aoc2023/grid"
)

// Part1 returns the sum of all part numbers in the schematic.
// A number too large for an int fails with ErrNumberTooLarge.
func Part1(input string, opts grid.ParseOptions) (int, error) {
	g, err := grid.Parse(input, opts)
	if err != nil {
		return 0, err
	}

	res := Scan(g)
	if err := res.Err(); err != nil {
		return 0, err
	}

	return res.PartSum(), nil
}

// Part2 returns the sum of all gear ratios in the schematic.
func Part2(input string, opts grid.ParseOptions) (int, error) {
	g, err := grid.Parse(input, opts)
	if err != nil {
		return 0, err
	}

	res := Scan(g)
	if err := res.Err(); err != nil {
		return 0, err
	}

	return res.GearRatioSum(), nil
}
