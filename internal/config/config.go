// Package config loads the optional aoc.toml settings shared by all solver
// binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/aoc2023/day02"
	"github.com/katalvlaran/aoc2023/grid"
)

// FileName is the name of the settings file searched for.
const FileName = "aoc.toml"

// ErrBadConfig indicates a settings file with invalid values.
var ErrBadConfig = errors.New("config: invalid configuration")

// Config is the decoded content of aoc.toml.
type Config struct {
	Input InputConfig `toml:"input"`
	Log   LogConfig   `toml:"log"`
	Day02 Day02Config `toml:"day02"`
	Day03 Day03Config `toml:"day03"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type InputConfig struct {
	// Dir is the dataset base directory, relative to aoc.toml.
	Dir string `toml:"dir"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Day02Config is the bag games are checked against.
type Day02Config struct {
	Red   int `toml:"red"`
	Green int `toml:"green"`
	Blue  int `toml:"blue"`
}

// Bag converts the settings to a day02.CubeSet.
func (c Day02Config) Bag() day02.CubeSet {
	return day02.CubeSet{Red: c.Red, Green: c.Green, Blue: c.Blue}
}

// Day03Config holds the schematic runes.
type Day03Config struct {
	Gear  string `toml:"gear"`
	Empty string `toml:"empty"`
}

// ParseOptions converts the settings to grid.ParseOptions. Call it only on a
// validated Config.
func (c Day03Config) ParseOptions() grid.ParseOptions {
	gear, _ := utf8.DecodeRuneInString(c.Gear)
	empty, _ := utf8.DecodeRuneInString(c.Empty)

	return grid.ParseOptions{Empty: empty, Gear: gear}
}

// Default returns the settings used when no aoc.toml is found.
func Default() Config {
	bag := day02.DefaultBag()
	opts := grid.DefaultParseOptions()

	return Config{
		Input: InputConfig{Dir: "."},
		Log:   LogConfig{Level: "info", Format: "text"},
		Day02: Day02Config{Red: bag.Red, Green: bag.Green, Blue: bag.Blue},
		Day03: Day03Config{Gear: string(opts.Gear), Empty: string(opts.Empty)},
	}
}

// Find walks up from startDir looking for aoc.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false, nil
}

// Load decodes the file at path on top of the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Discover finds aoc.toml above startDir and loads it, falling back to
// Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}

	return Load(path)
}

// InputDir returns the dataset base directory. A relative Input.Dir is
// resolved against the directory of aoc.toml, or against fallback when the
// config did not come from a file.
func (c Config) InputDir(fallback string) string {
	if filepath.IsAbs(c.Input.Dir) {
		return c.Input.Dir
	}
	base := fallback
	if c.Path != "" {
		base = filepath.Dir(c.Path)
	}

	return filepath.Join(base, c.Input.Dir)
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrBadConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrBadConfig, c.Log.Format)
	}
	if c.Day02.Red < 0 || c.Day02.Green < 0 || c.Day02.Blue < 0 {
		return fmt.Errorf("%w: day02 cube counts must not be negative", ErrBadConfig)
	}
	if utf8.RuneCountInString(c.Day03.Gear) != 1 || utf8.RuneCountInString(c.Day03.Empty) != 1 {
		return fmt.Errorf("%w: day03.gear and day03.empty must be single characters", ErrBadConfig)
	}
	if err := c.Day03.ParseOptions().Validate(); err != nil {
		return fmt.Errorf("%w: day03: %w", ErrBadConfig, err)
	}

	return nil
}
