package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/unixmode/cmd"

	"github.com/mutagen-io/unixmode/pkg/unixmode"
)

// versionMain is the entry point for the version command.
func versionMain(_ *cobra.Command, _ []string) error {
	// Print version information.
	fmt.Println(unixmode.Version)

	// Print build information if requested.
	if versionConfiguration.long {
		fmt.Printf("Built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		if unixmode.DebugEnabled {
			fmt.Println("Debugging enabled")
		}
	}

	// Success.
	return nil
}

// versionCommand is the version command.
var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cmd.DisallowArguments,
	Run:   cmd.Mainify(versionMain),
}

// versionConfiguration stores configuration for the version command.
var versionConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// long indicates whether or not to show build information.
	long bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := versionCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&versionConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&versionConfiguration.long, "long", "l", false, "Show build information")
}
