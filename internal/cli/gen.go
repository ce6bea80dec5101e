package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// WriteFunc writes n generated records drawn from rng.
type WriteFunc func(w io.Writer, rng *rand.Rand, n int) error

// Gen describes one input generator binary.
type Gen struct {
	Day int
	// Count and File are the defaults of --count and --out. File "-" is stdout.
	Count int
	File  string
	Write WriteFunc
}

// NewGenCommand returns the cobra command running g. The seed is time based
// unless --seed is given.
func NewGenCommand(g Gen) *cobra.Command {
	var (
		count int
		seed  int64
		out   string
	)
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("day%02d-gen", g.Day),
		Short:         fmt.Sprintf("Write a random day %d input", g.Day),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			return generate(cmd, g, count, seed, out)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&count, "count", "n", g.Count, "number of records to write")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.StringVarP(&out, "out", "o", g.File, `output file, "-" for stdout`)

	return cmd
}

// MainGen executes the generator for g and exits with status 1 on failure.
func MainGen(g Gen) {
	if err := NewGenCommand(g).Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(cmd *cobra.Command, g Gen, count int, seed int64, out string) (err error) {
	log := newLogger("info", "text", cmd.ErrOrStderr()).With("day", g.Day)

	w := cmd.OutOrStdout()
	if out != "-" {
		f, cerr := os.Create(out)
		if cerr != nil {
			log.Error("create output", "path", out, "err", cerr)

			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	start := time.Now()
	if err := g.Write(w, rand.New(rand.NewSource(seed)), count); err != nil {
		log.Error("generate", "err", err)

		return err
	}
	log.Info("generated", "records", count, "seed", seed, "out", out, "elapsed", time.Since(start))

	return nil
}
