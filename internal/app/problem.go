package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/corey/lenz/internal/domain/source"
)

// Sentinel causes for rejected paths.
var (
	ErrNotExist   = errors.New("file does not exist")
	ErrNotRegular = errors.New("path is not a file")
)

// ProblemKind classifies a problem for the errors report.
type ProblemKind int

const (
	// NotExist: the path is missing at validation time.
	NotExist ProblemKind = iota
	// NotRegular: the path exists but is a directory or special file.
	NotRegular
	// StatFailed: the path could not be inspected.
	StatFailed
	// ReadFailed: the file passed validation but could not be read.
	ReadFailed
)

// Problem is one entry of the errors report.
type Problem struct {
	Path string
	Kind ProblemKind
	Err  error
}

func (p *Problem) Error() string {
	switch p.Kind {
	case NotExist:
		return fmt.Sprintf("file %q does not exist", p.Path)
	case NotRegular:
		return fmt.Sprintf("path %q is not a file", p.Path)
	case ReadFailed:
		return fmt.Sprintf("read %q: %v", p.Path, p.Err)
	}
	return fmt.Sprintf("stat %q: %v", p.Path, p.Err)
}

func (p *Problem) Unwrap() error { return p.Err }

// Message is the report sentence for the problem. quote wraps the path, so
// callers can style it.
func (p *Problem) Message(quote func(path string) string) string {
	if quote == nil {
		quote = func(s string) string { return "'" + s + "'" }
	}
	switch p.Kind {
	case NotExist:
		return "File " + quote(p.Path) + " does not exist."
	case NotRegular:
		return "Path " + quote(p.Path) + " is not a file."
	case ReadFailed:
		return "File " + quote(p.Path) + " could not be read: " + p.Err.Error() + "."
	}
	return "Path " + quote(p.Path) + " could not be inspected: " + p.Err.Error() + "."
}

// Prepare validates paths in order. Every path that exists and is a regular
// file becomes a Source; every other path becomes a Problem. Duplicates are
// kept.
func Prepare(paths []string, query string, ignoreCase bool) ([]*source.Source, []*Problem) {
	var (
		sources  []*source.Source
		problems []*Problem
	)
	for _, path := range paths {
		if p := check(path); p != nil {
			problems = append(problems, p)
			continue
		}
		sources = append(sources, source.New(path, query, ignoreCase))
	}
	return sources, problems
}

func check(path string) *Problem {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Problem{Path: path, Kind: NotExist, Err: ErrNotExist}
	case err != nil:
		return &Problem{Path: path, Kind: StatFailed, Err: err}
	case !info.Mode().IsRegular():
		return &Problem{Path: path, Kind: NotRegular, Err: ErrNotRegular}
	}
	return nil
}

// readProblem turns a failed display into a report entry.
func readProblem(res source.Result) *Problem {
	if res.Outcome == source.OK {
		return nil
	}
	if res.Outcome == source.NotFound {
		return &Problem{Path: res.Path, Kind: NotExist, Err: fmt.Errorf("%w: %w", ErrNotExist, res.Err)}
	}
	return &Problem{Path: res.Path, Kind: ReadFailed, Err: res.Err}
}
