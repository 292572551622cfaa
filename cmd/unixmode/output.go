package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mutagen-io/unixmode/cmd/unixmode/common/templating"

	"github.com/mutagen-io/unixmode/pkg/configuration"
	"github.com/mutagen-io/unixmode/pkg/encoding"
)

// outputFlags stores the output flags shared by commands that print
// descriptions.
type outputFlags struct {
	// format stores the value of the --format flag.
	format string
	// long stores the value of the --long flag.
	long bool
	// TemplateFlags stores the output template flags.
	templating.TemplateFlags
}

// register registers the flags into the specified flag set.
func (f *outputFlags) register(flags *pflag.FlagSet) {
	flags.BoolVarP(&f.long, "long", "l", false, "Show detailed output")
	flags.StringVar(&f.format, "format", "", "Specify the output format (text|yaml|json)")
	f.TemplateFlags.Register(flags)
}

// textPrinter prints a single description in text format.
type textPrinter func(writer io.Writer, description *encoding.Description, long bool)

// emit writes descriptions to standard output using the format selected by
// the command line flags, falling back to the loaded configuration for values
// that weren't specified. An output template takes precedence over the format.
func (f *outputFlags) emit(command *cobra.Command, descriptions []*encoding.Description, printer textPrinter) error {
	return f.emitTo(color.Output, command.Flags(), descriptions, printer)
}

// emitTo implements emit for an arbitrary writer and flag set.
func (f *outputFlags) emitTo(writer io.Writer, flags *pflag.FlagSet, descriptions []*encoding.Description, printer textPrinter) error {
	// Handle templated output.
	if template, err := f.LoadTemplate(); err != nil {
		return errors.Wrap(err, "unable to load formatting template")
	} else if template != nil {
		if err := template.Execute(writer, descriptions); err != nil {
			return errors.Wrap(err, "unable to execute formatting template")
		}
		return nil
	}

	// Determine the effective format and listing mode.
	format := loaded.Output.Format
	if f.format != "" {
		format = f.format
	}
	long := loaded.Output.Long
	if flags.Changed("long") {
		long = f.long
	}

	// Print the descriptions.
	switch format {
	case configuration.FormatText:
		for _, description := range descriptions {
			printer(writer, description, long)
		}
		return nil
	case configuration.FormatYAML:
		return encoding.EncodeYAML(writer, descriptions)
	case configuration.FormatJSON:
		return encoding.EncodeJSON(writer, descriptions)
	default:
		return errors.Errorf("invalid output format: %q", format)
	}
}
