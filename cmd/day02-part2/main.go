// Command day02-part2 prints the answer to day 2, part 2: the sum of game powers.
package main

import (
	"github.com/katalvlaran/aoc2023/day02"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 2, Part: 2, Solve: func(content string, _ config.Config) (int, error) {
		return day02.Part2(content)
	}})
}
