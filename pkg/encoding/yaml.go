package encoding

import (
	"io"

	"github.com/pkg/errors"
	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure. Unknown fields are treated as an error.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		return yamlv2.UnmarshalStrict(data, value)
	})
}

// EncodeYAML writes the YAML encoding of value to the specified writer using a
// two-space indent.
func EncodeYAML(writer io.Writer, value interface{}) error {
	// Create and configure the encoder.
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	// Perform encoding.
	if err := encoder.Encode(value); err != nil {
		return errors.Wrap(err, "unable to encode YAML")
	}

	// Flush the encoder.
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "unable to flush YAML encoder")
	}

	// Success.
	return nil
}
