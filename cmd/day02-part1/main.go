// Command day02-part1 prints the answer to day 2, part 1: the sum of IDs of games the configured bag allows.
package main

import (
	"github.com/katalvlaran/aoc2023/day02"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 2, Part: 1, Solve: func(content string, cfg config.Config) (int, error) {
		return day02.Part1(content, cfg.Day02.Bag())
	}})
}
