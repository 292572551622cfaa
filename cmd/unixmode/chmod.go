package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/unixmode/cmd"

	"github.com/mutagen-io/unixmode/pkg/filesystem"
	"github.com/mutagen-io/unixmode/pkg/mode"
	"github.com/mutagen-io/unixmode/pkg/platform/terminal"
)

// chmodMain is the entry point for the chmod command.
func chmodMain(_ *cobra.Command, arguments []string) error {
	logger := logger.Sublogger("chmod")

	// Parse the mode. Only the permission and special bits are applied, so a
	// full ls -l rendering may be used.
	value, err := mode.Parse(arguments[0])
	if err != nil {
		return errors.Wrapf(err, "unable to parse mode %q", arguments[0])
	}
	permissions := uint32(mode.Mode(value).Permissions())
	if value&mode.TypeMask != 0 {
		cmd.Warning("ignoring file type in mode specification")
	}
	logger.Debugf("applying permissions %04o", permissions)

	// Expand any glob patterns.
	paths, err := filesystem.Expand(arguments[1:])
	if err != nil {
		return err
	}

	// Apply the permissions to each path, reporting failures but continuing.
	var failed bool
	for _, path := range paths {
		if err := filesystem.SetPermissionsByPath(path, permissions); err != nil {
			cmd.Error(err)
			failed = true
			continue
		}
		logger.Info("updated ", path)
		if chmodConfiguration.verbose {
			if metadata, err := filesystem.Lstat(path); err != nil {
				cmd.Error(err)
				failed = true
			} else {
				fmt.Fprintf(color.Output, "%s %s\n", formatRendering(metadata.Mode), terminal.NeutralizeControlCharacters(path))
			}
		}
	}

	// Signal any failures.
	if failed {
		return errPartialFailure
	}

	// Success.
	return nil
}

// chmodCommand is the chmod command.
var chmodCommand = &cobra.Command{
	Use:   "chmod <mode> <path>...",
	Short: "Set the permission bits of filesystem entries",
	Long: `Set the permission bits of filesystem entries.

The mode may be specified in octal (e.g. 4755) or as a 10 character ls -l
string (e.g. -rwsr-xr-x), in which case the type character is ignored.
Symbolic links are followed.`,
	Args:         cobra.MinimumNArgs(2),
	RunE:         chmodMain,
	SilenceUsage: true,
}

// chmodConfiguration stores configuration for the chmod command.
var chmodConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// verbose indicates whether or not to print the resulting modes.
	verbose bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := chmodCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&chmodConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&chmodConfiguration.verbose, "verbose", "v", false, "Print the resulting mode of each path")
}
