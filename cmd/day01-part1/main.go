// Command day01-part1 prints the answer to day 1, part 1: the sum of digit-only calibration values.
package main

import (
	"github.com/katalvlaran/aoc2023/day01"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 1, Part: 1, Solve: func(content string, _ config.Config) (int, error) {
		return day01.Part1(content)
	}})
}
