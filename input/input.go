// Package input locates and reads puzzle datasets.
//
// A dataset is identified by its day and a file name. The loader looks in two
// places, so a solver finds its file whether it is started from the day's own
// directory or from the repository root:
//
//	input/<file>
//	dayNN/input/<file>
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

var (
	// ErrFileNotFound indicates the dataset exists under neither candidate path.
	ErrFileNotFound = errors.New("input: file not found")
	// ErrIO indicates the dataset exists but could not be read.
	ErrIO = errors.New("input: read failed")
)

// Loader reads datasets from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a Loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader returns a Loader rooted at the directory dir.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// Candidates returns the paths Load tries for (day, file), in order.
func Candidates(day int, file string) []string {
	return []string{
		path.Join("input", file),
		path.Join(fmt.Sprintf("day%02d", day), "input", file),
	}
}

// Load returns the full content of the dataset, along with the path it was
// read from. It fails with ErrFileNotFound when no candidate exists and with
// ErrIO when the file exists but reading it fails.
func (l *Loader) Load(day int, file string) (content, from string, err error) {
	candidates := Candidates(day, file)
	for _, p := range candidates {
		if _, err := fs.Stat(l.fsys, p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return "", p, fmt.Errorf("%w: %s: %w", ErrIO, p, err)
		}
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return "", p, fmt.Errorf("%w: %s: %w", ErrIO, p, err)
		}

		return string(data), p, nil
	}

	return "", "", fmt.Errorf("%w: path %q doesn't exist", ErrFileNotFound, candidates[0])
}
