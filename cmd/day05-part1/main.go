// Command day05-part1 prints the answer to day 5, part 1: the lowest location of any seed.
package main

import (
	"fortio.org/safecast"

	"github.com/katalvlaran/aoc2023/day05"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 5, Part: 1, Solve: func(content string, _ config.Config) (int, error) {
		loc, err := day05.Part1(content)
		if err != nil {
			return 0, err
		}

		return safecast.Conv[int](loc)
	}})
}
