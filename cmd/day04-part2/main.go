// Command day04-part2 prints the answer to day 4, part 2: the number of scratchcards held after all copies are won.
package main

import (
	"github.com/katalvlaran/aoc2023/day04"
	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
)

func main() {
	cli.Main(cli.Part{Day: 4, Part: 2, Solve: func(content string, _ config.Config) (int, error) {
		return day04.Part2(content)
	}})
}
