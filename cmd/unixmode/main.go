package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/unixmode/cmd"

	"github.com/mutagen-io/unixmode/pkg/configuration"
	"github.com/mutagen-io/unixmode/pkg/logging"
	"github.com/mutagen-io/unixmode/pkg/unixmode"
)

var (
	// loaded is the effective configuration, populated before any subcommand
	// runs.
	loaded = configuration.Default()
	// logger is the root logger, populated before any subcommand runs.
	logger *logging.Logger
)

// rootPreRun loads configuration and applies global flag overrides before any
// command is run.
func rootPreRun(_ *cobra.Command, _ []string) error {
	// Shell completion doesn't need any configuration.
	if cmd.PerformingShellCompletion {
		return nil
	}

	// Determine the configuration path.
	path, err := configurationPath()
	if err != nil {
		return errors.Wrap(err, "unable to compute configuration path")
	}

	// Load the configuration.
	config, err := configuration.LoadConfiguration(path)
	if err != nil {
		return err
	}

	// Apply command line overrides and re-validate.
	if rootConfiguration.color != "" {
		config.Output.Color = rootConfiguration.color
	}
	if rootConfiguration.logLevel != "" {
		config.Logging.Level = rootConfiguration.logLevel
	}
	if err := config.EnsureValid(); err != nil {
		return errors.Wrap(err, "invalid command line overrides")
	}

	// Configure color output.
	if err := cmd.ConfigureColor(config.Output.Color); err != nil {
		return err
	}

	// Configure logging. The level was validated above.
	level, _ := logging.NameToLevel(config.Logging.Level)
	logger = cmd.ConfigureLogging(level)
	logger.Debugf("using configuration from %s", path)
	logger.Debug("logging at level ", logger.Level())

	// Record the configuration.
	loaded = config

	// Success.
	return nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We
	// don't have to worry about warning about arguments being present here
	// (which would be incorrect usage) because arguments can't even reach
	// this point (they will be mistaken for subcommands and an error will be
	// displayed).
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "unixmode",
	Version:           unixmode.Version,
	Short:             "unixmode decodes and renders Unix file mode values",
	PersistentPreRunE: rootPreRun,
	RunE:              rootMain,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configurationPath overrides the configuration file path.
	configurationPath string
	// logLevel overrides the configured log level.
	logLevel string
	// color overrides the configured color mode.
	color string
}

func init() {
	// Disable alphabetical sorting of commands in help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap so that the binary can be launched
	// from Explorer on Windows.
	cobra.MousetrapHelpText = ""

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register global flags.
	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.SortFlags = false
	persistentFlags.StringVar(&rootConfiguration.configurationPath, "config", "", "Specify the configuration file path")
	persistentFlags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Set the log level (disabled|error|warn|info|debug|trace)")
	persistentFlags.StringVar(&rootConfiguration.color, "color", "", "Set the color mode (auto|always|never)")

	// Register commands.
	rootCommand.AddCommand(
		renderCommand,
		statCommand,
		chmodCommand,
		configCommand,
		versionCommand,
		legalCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Error(err)
		os.Exit(1)
	}
}
