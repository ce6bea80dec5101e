// Command day01-part2 prints the answer to day 1, part 2: the sum of calibration values with spelled-out digits.
package main

import (
	"github.com/katalvlaran/aoc2023/day01"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 1, Part: 2, Solve: func(content string, _ config.Config) (int, error) {
		return day01.Part2(content)
	}})
}
