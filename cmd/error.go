package cmd

import (
	"os"

	"github.com/fatih/color"
)

// Warning prints a warning message to standard error.
func Warning(message string) {
	color.New(color.FgYellow).Fprintln(color.Error, "Warning:", message)
}

// Error prints an error message to standard error.
func Error(err error) {
	color.New(color.FgRed).Fprintln(color.Error, "Error:", err)
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
