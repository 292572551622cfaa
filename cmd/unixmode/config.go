package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/unixmode/cmd"

	"github.com/mutagen-io/unixmode/pkg/configuration"
	"github.com/mutagen-io/unixmode/pkg/encoding"
)

// configurationPath returns the configuration path in effect.
func configurationPath() (string, error) {
	if rootConfiguration.configurationPath != "" {
		return rootConfiguration.configurationPath, nil
	}
	return configuration.ConfigurationPath()
}

// configShowMain is the entry point for the config show command.
func configShowMain(_ *cobra.Command, _ []string) error {
	return encoding.EncodeYAML(color.Output, loaded)
}

// configInitMain is the entry point for the config init command.
func configInitMain(_ *cobra.Command, _ []string) error {
	// Determine the target path.
	path, err := configurationPath()
	if err != nil {
		return errors.Wrap(err, "unable to compute configuration path")
	}

	// Refuse to overwrite an existing configuration unless forced.
	if !configInitConfiguration.force {
		if _, err := os.Lstat(path); err == nil {
			return errors.Errorf("configuration already exists at %s", path)
		} else if !os.IsNotExist(err) {
			return errors.Wrap(err, "unable to check for existing configuration")
		}
	}

	// Write the default configuration.
	if err := configuration.Default().Save(path, logger); err != nil {
		return err
	}
	logger.Infof("wrote default configuration to %s", path)

	// Success.
	return nil
}

// configCommand is the config command.
var configCommand = &cobra.Command{
	Use:          "config",
	Short:        "Manage configuration",
	Args:         cmd.DisallowArguments,
	RunE:         rootMain,
	SilenceUsage: true,
}

// configShowCommand is the config show command.
var configShowCommand = &cobra.Command{
	Use:          "show",
	Short:        "Show the effective configuration",
	Args:         cmd.DisallowArguments,
	RunE:         configShowMain,
	SilenceUsage: true,
}

// configInitCommand is the config init command.
var configInitCommand = &cobra.Command{
	Use:          "init",
	Short:        "Write a default configuration file",
	Args:         cmd.DisallowArguments,
	RunE:         configInitMain,
	SilenceUsage: true,
}

// configInitConfiguration stores configuration for the config init command.
var configInitConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// force indicates whether or not to overwrite an existing file.
	force bool
}

func init() {
	// Register subcommands.
	configCommand.AddCommand(configShowCommand, configInitCommand)

	// Configure config init flags.
	flags := configInitCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&configInitConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&configInitConfiguration.force, "force", "f", false, "Overwrite any existing configuration")
}
