// Command day04-part1 prints the answer to day 4, part 1: the total points of all scratchcards.
package main

import (
	"github.com/katalvlaran/aoc2023/day04"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 4, Part: 1, Solve: func(content string, _ config.Config) (int, error) {
		return day04.Part1(content)
	}})
}
