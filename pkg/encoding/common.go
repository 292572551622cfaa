package encoding

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadAndUnmarshal provides the underlying loading and unmarshaling
// functionality for the encoding package. It reads the data at the specified
// path and then invokes the specified unmarshaling callback (usually a closure)
// to decode the data.
func LoadAndUnmarshal(path string, unmarshal func([]byte) error) error {
	// Grab the file contents.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return errors.Wrap(err, "unable to load file")
	}

	// Perform the unmarshaling.
	if err := unmarshal(data); err != nil {
		return errors.Wrap(err, "unable to unmarshal data")
	}

	// Success.
	return nil
}

// EncodeJSON writes the indented JSON encoding of value to the specified
// writer, followed by a newline. HTML characters are not escaped.
func EncodeJSON(writer io.Writer, value interface{}) error {
	// Create and configure the encoder.
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	// Perform encoding.
	if err := encoder.Encode(value); err != nil {
		return errors.Wrap(err, "unable to encode JSON")
	}

	// Success.
	return nil
}
