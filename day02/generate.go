package day02

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

// GenOptions bounds the games written by Generate.
type GenOptions struct {
	// MaxDraws is the upper bound of draws per game; each game has at least one.
	MaxDraws int
	// MaxCubes is the upper bound of cubes per colour in a draw; at least one.
	MaxCubes int
}

// DefaultGenOptions returns 1-5 draws per game and 1-100 cubes per colour.
func DefaultGenOptions() GenOptions {
	return GenOptions{MaxDraws: 5, MaxCubes: 100}
}

// Validate checks that both bounds are positive.
func (o GenOptions) Validate() error {
	if o.MaxDraws < 1 || o.MaxCubes < 1 {
		return fmt.Errorf("%w: draws %d, cubes %d", ErrBadGenOptions, o.MaxDraws, o.MaxCubes)
	}

	return nil
}

// Generate writes games random game lines numbered from 1, each draw listing
// green, blue and red in that order. The output parses with Parser.Parse.
// The same rng state always yields the same text.
func Generate(w io.Writer, rng *rand.Rand, games int, opts GenOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if games < 0 {
		return fmt.Errorf("%w: %d games", ErrBadGenOptions, games)
	}

	bw := bufio.NewWriter(w)
	for id := 1; id <= games; id++ {
		fmt.Fprintf(bw, "Game %d: ", id)
		draws := 1 + rng.Intn(opts.MaxDraws)
		for d := 0; d < draws; d++ {
			if d > 0 {
				bw.WriteString("; ")
			}
			fmt.Fprintf(bw, "%d green, %d blue, %d red",
				1+rng.Intn(opts.MaxCubes), 1+rng.Intn(opts.MaxCubes), 1+rng.Intn(opts.MaxCubes))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
