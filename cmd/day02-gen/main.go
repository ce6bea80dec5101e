// Command day02-gen writes a large random day 2 input, one million games by default, for timing the solvers.
package main

import (
	"io"
	"math/rand"

	"github.com/katalvlaran/aoc2023/day02"
	"github.com/katalvlaran/aoc2023/internal/cli"
)

func main() {
	cli.MainGen(cli.Gen{Day: 2, Count: 1_000_000, File: "input_big.txt", Write: func(w io.Writer, rng *rand.Rand, n int) error {
		return day02.Generate(w, rng, n, day02.DefaultGenOptions())
	}})
}
