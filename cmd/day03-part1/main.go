// Command day03-part1 prints the answer to day 3, part 1: the sum of part numbers.
package main

import (
	"github.com/katalvlaran/aoc2023/day03"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 3, Part: 1, Solve: func(content string, cfg config.Config) (int, error) {
		return day03.Part1(content, cfg.Day03.ParseOptions())
	}})
}
