package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/aoc2023/input"
	"github.com/katalvlaran/aoc2023/internal/config"
)

// DefaultFile is the dataset read when Part.File is empty.
const DefaultFile = "input.txt"

// SolveFunc computes one answer from a dataset's full text.
type SolveFunc func(content string, cfg config.Config) (int, error)

// Part describes one solver binary.
type Part struct {
	Day, Part int
	File      string
	Solve     SolveFunc

	// WorkDir is where aoc.toml discovery starts; the process working
	// directory when empty.
	WorkDir string
}

// NewCommand returns the cobra command running p. It takes no arguments.
func NewCommand(p Part) *cobra.Command {
	return &cobra.Command{
		Use:           fmt.Sprintf("day%02d-part%d", p.Day, p.Part),
		Short:         fmt.Sprintf("Solve part %d of day %d", p.Part, p.Day),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, p)
		},
	}
}

// Main executes the command for p and exits with status 1 on failure.
func Main(p Part) {
	if err := NewCommand(p).Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, p Part) error {
	log := newLogger("info", "text", cmd.ErrOrStderr())

	wd := p.WorkDir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			log.Error("resolve working directory", "err", err)

			return err
		}
	}
	cfg, err := config.Discover(wd)
	if err != nil {
		log.Error("load config", "err", err)

		return err
	}
	log = newLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()).
		With("day", p.Day, "part", p.Part)
	log.Debug("config", "path", cfg.Path)

	file := p.File
	if file == "" {
		file = DefaultFile
	}
	dir := cfg.InputDir(wd)
	content, from, err := input.NewDirLoader(dir).Load(p.Day, file)
	if err != nil {
		log.Error("load input", "dir", dir, "file", file, "err", err)

		return err
	}
	log.Debug("input loaded", "path", filepath.Join(dir, from), "bytes", len(content))

	start := time.Now()
	answer, err := p.Solve(content, cfg)
	if err != nil {
		log.Error("solve", "err", err)

		return err
	}
	log.Debug("solved", "elapsed", time.Since(start))

	return printAnswer(cmd.OutOrStdout(), answer)
}

// printAnswer writes "answer: <value>", with the value in bold on a terminal.
func printAnswer(w io.Writer, answer int) error {
	c := color.New(color.Bold)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, err := fmt.Fprintf(w, "answer: %s\n", c.Sprint(answer))

	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
