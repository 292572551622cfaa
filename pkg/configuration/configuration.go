package configuration

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/unixmode/pkg/encoding"
	"github.com/mutagen-io/unixmode/pkg/filesystem"
	"github.com/mutagen-io/unixmode/pkg/logging"
)

const (
	// FormatText indicates plain text output.
	FormatText = "text"
	// FormatYAML indicates YAML output.
	FormatYAML = "yaml"
	// FormatJSON indicates JSON output.
	FormatJSON = "json"

	// ColorAuto indicates that color should be used only when standard output
	// is a terminal.
	ColorAuto = "auto"
	// ColorAlways indicates that color should always be used.
	ColorAlways = "always"
	// ColorNever indicates that color should never be used.
	ColorNever = "never"
)

// Configuration is the YAML configuration object type.
type Configuration struct {
	// Output is the output configuration.
	Output struct {
		// Format is the default output format.
		Format string `yaml:"format"`
		// Color is the default color mode.
		Color string `yaml:"color"`
		// Long indicates whether or not long listings are the default.
		Long bool `yaml:"long"`
	} `yaml:"output"`
	// Logging is the logging configuration.
	Logging struct {
		// Level is the name of the default log level.
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns a configuration populated with default values.
func Default() *Configuration {
	result := &Configuration{}
	result.Output.Format = FormatText
	result.Output.Color = ColorAuto
	result.Logging.Level = logging.LevelWarn.String()
	return result
}

// EnsureValid ensures that the configuration's values are valid.
func (c *Configuration) EnsureValid() error {
	// Verify the output format.
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return errors.Errorf("invalid output format: %q", c.Output.Format)
	}

	// Verify the color mode.
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("invalid color mode: %q", c.Output.Color)
	}

	// Verify the log level.
	if _, ok := logging.NameToLevel(c.Logging.Level); !ok {
		return errors.Errorf("invalid log level: %q", c.Logging.Level)
	}

	// Success.
	return nil
}

// LoadConfiguration loads the YAML-based configuration file at the specified
// path. Values not specified in the file retain their defaults, and a missing
// file yields the default configuration. The returned structure is not
// re-used, so its members can be freely mutated.
func LoadConfiguration(path string) (*Configuration, error) {
	// Create a configuration that we can decode into, populated with defaults
	// that will be retained if the file doesn't exist or omits values.
	result := Default()

	// Attempt to load the configuration from disk.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "unable to load configuration")
		}
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}

// Save writes the configuration to the specified path in YAML format. The
// file is replaced atomically and is readable only by the owner.
func (c *Configuration) Save(path string, logger *logging.Logger) error {
	// Encode the configuration.
	buffer := &bytes.Buffer{}
	if err := encoding.EncodeYAML(buffer, c); err != nil {
		return errors.Wrap(err, "unable to encode configuration")
	}

	// Write the configuration.
	if err := filesystem.WriteFileAtomic(path, buffer.Bytes(), 0600, logger); err != nil {
		return errors.Wrap(err, "unable to write configuration")
	}

	// Success.
	return nil
}
