package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/unixmode/cmd"

	"github.com/mutagen-io/unixmode/pkg/encoding"
	"github.com/mutagen-io/unixmode/pkg/mode"
)

// describeModes parses mode specifications and describes each of them.
func describeModes(specifications []string) ([]*encoding.Description, error) {
	logger := logger.Sublogger("render")
	descriptions := make([]*encoding.Description, 0, len(specifications))
	for _, specification := range specifications {
		value, err := mode.Parse(specification)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse mode %q", specification)
		}
		logger.Tracef("parsed %q as %07o", specification, value)
		descriptions = append(descriptions, encoding.Describe(value))
	}
	return descriptions, nil
}

// printRendered prints a description produced by the render command.
func printRendered(writer io.Writer, description *encoding.Description, long bool) {
	if long {
		fmt.Fprintf(writer, "%s %s %s\n", description.Mode, formatRendering(description.Value()), description.Type)
	} else {
		fmt.Fprintln(writer, formatRendering(description.Value()))
	}
}

// renderMain is the entry point for the render command.
func renderMain(command *cobra.Command, arguments []string) error {
	// Decode the modes.
	descriptions, err := describeModes(arguments)
	if err != nil {
		return err
	}

	// Print the results.
	return renderConfiguration.output.emit(command, descriptions, printRendered)
}

// renderCommand is the render command.
var renderCommand = &cobra.Command{
	Use:   "render <mode>...",
	Short: "Render mode values in ls -l format",
	Long: `Render mode values in ls -l format.

Each mode may be specified in octal (e.g. 0100644 or 0o40755) or as a 10
character ls -l string (e.g. drwxr-xr-x).`,
	Args:         cmd.RequireArguments,
	RunE:         renderMain,
	SilenceUsage: true,
}

// renderConfiguration stores configuration for the render command.
var renderConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// output stores the output flags.
	output outputFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := renderCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&renderConfiguration.help, "help", "h", false, "Show help information")

	// Wire up output flags.
	renderConfiguration.output.register(flags)
}
