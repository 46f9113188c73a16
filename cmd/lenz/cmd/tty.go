package cmd

import (
	"io"

	"github.com/mattn/go-isatty"

	"github.com/corey/lenz/internal/config"
)

// isTerminal returns true if w is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveColor determines whether to use color output.
// mode is "auto", "always", or "never"; noColorFlag is --no-color and
// noColorEnv reports a set NO_COLOR variable. Explicit flags win over the
// environment.
func resolveColor(mode string, noColorFlag, noColorEnv bool, w io.Writer) bool {
	if noColorFlag {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // auto
		if noColorEnv {
			return false
		}
		return isTerminal(w)
	}
}
