package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/mutagen-io/unixmode/pkg/configuration"
)

// isTerminal reports whether or not the specified file descriptor refers to a
// terminal, including Cygwin and MSYS2 terminals on Windows.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConfigureColor configures colorized output for the specified color mode (one
// of the configuration.Color* values).
func ConfigureColor(mode string) error {
	switch mode {
	case configuration.ColorAuto:
		color.NoColor = os.Getenv("TERM") == "dumb" || !isTerminal(os.Stdout.Fd())
	case configuration.ColorAlways:
		color.NoColor = false
	case configuration.ColorNever:
		color.NoColor = true
	default:
		return errors.Errorf("invalid color mode: %q", mode)
	}
	return nil
}
