package templating

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/mutagen-io/unixmode/pkg/encoding"
	"github.com/mutagen-io/unixmode/pkg/mode"
)

// jsonify is the built-in JSON encoder that's made available to templates.
func jsonify(value interface{}) (string, error) {
	// Create a buffer to store the output.
	buffer := &bytes.Buffer{}

	// Create and configure a JSON encoder.
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)

	// Marshal the value.
	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	// Convert the encoded JSON to a string.
	result := buffer.String()

	// Remove the trailing newline that's automatically added by Encode.
	result = strings.TrimSuffix(result, "\n")

	// Success.
	return result, nil
}

// describe is the built-in mode decoder that's made available to templates. It
// accepts octal and symbolic mode specifications.
func describe(specification string) (*encoding.Description, error) {
	value, err := mode.Parse(specification)
	if err != nil {
		return nil, err
	}
	return encoding.Describe(value), nil
}

// builtins are the builtin functions supported in output templates.
var builtins = template.FuncMap{
	"json":     jsonify,
	"describe": describe,
}
