package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/unixmode/cmd"

	"github.com/mutagen-io/unixmode/pkg/encoding"
	"github.com/mutagen-io/unixmode/pkg/filesystem"
	"github.com/mutagen-io/unixmode/pkg/platform/terminal"
)

// describePaths queries and describes the filesystem entries at the specified
// paths. Paths that can't be queried are reported and skipped, in which case
// the returned boolean is true.
func describePaths(paths []string) ([]*encoding.Description, bool) {
	logger := logger.Sublogger("stat")
	var descriptions []*encoding.Description
	var failed bool
	for _, path := range paths {
		metadata, err := filesystem.Lstat(path)
		if err != nil {
			cmd.Error(err)
			failed = true
			continue
		}
		logger.Tracef("mode of %s is %07o", path, metadata.Mode)
		description := encoding.Describe(metadata.Mode)
		description.Path = path
		size := metadata.Size
		description.Size = &size
		descriptions = append(descriptions, description)
	}
	return descriptions, failed
}

// printStat prints a description produced by the stat command.
func printStat(writer io.Writer, description *encoding.Description, long bool) {
	path := terminal.NeutralizeControlCharacters(description.Path)
	if long {
		var size string
		if description.Size != nil {
			size = humanize.Bytes(*description.Size)
		}
		fmt.Fprintf(writer, "%s %s %8s %s\n", formatRendering(description.Value()), description.Mode, size, path)
	} else {
		fmt.Fprintf(writer, "%s %s\n", formatRendering(description.Value()), path)
	}
}

// statMain is the entry point for the stat command.
func statMain(command *cobra.Command, arguments []string) error {
	// Expand any glob patterns.
	paths, err := filesystem.Expand(arguments)
	if err != nil {
		return err
	}
	logger.Sublogger("stat").Debugf("expanded %d arguments into %d paths", len(arguments), len(paths))

	// Query the paths.
	descriptions, failed := describePaths(paths)

	// Print the results.
	if err := statConfiguration.output.emit(command, descriptions, printStat); err != nil {
		return err
	}

	// Signal any failures.
	if failed {
		return errPartialFailure
	}

	// Success.
	return nil
}

// statCommand is the stat command.
var statCommand = &cobra.Command{
	Use:   "stat <path>...",
	Short: "Show the modes of filesystem entries",
	Long: `Show the modes of filesystem entries.

Symbolic links are not followed. Arguments may be doublestar glob patterns
(e.g. src/**/*.go), which are expanded relative to their leading literal
directory.`,
	Args:         cmd.RequireArguments,
	RunE:         statMain,
	SilenceUsage: true,
}

// statConfiguration stores configuration for the stat command.
var statConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// output stores the output flags.
	output outputFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := statCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&statConfiguration.help, "help", "h", false, "Show help information")

	// Wire up output flags.
	statConfiguration.output.register(flags)
}
