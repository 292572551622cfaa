package templating

import (
	"os"
	"text/template"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// TemplateFlags stores the --template and --template-file flags, which replace
// a command's default output with a user-supplied text/template that's executed
// once over the command's list of descriptions.
type TemplateFlags struct {
	// literal is the template given inline via --template.
	literal string
	// path is the template file given via --template-file.
	path string
}

// Register registers the flags into the specified flag set.
func (f *TemplateFlags) Register(flags *pflag.FlagSet) {
	flags.StringVar(&f.literal, "template", "", "Format output using the specified template")
	flags.StringVar(&f.path, "template-file", "", "Format output using the template in the specified file")
}

// source returns the template text selected by the flags, with false if no
// template was given.
func (f *TemplateFlags) source() (string, bool, error) {
	switch {
	case f.literal != "" && f.path != "":
		return "", false, errors.New("--template and --template-file are mutually exclusive")
	case f.literal != "":
		return f.literal, true, nil
	case f.path == "":
		return "", false, nil
	}

	// Read the template file. It must be valid UTF-8 text.
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false, errors.Wrap(err, "unable to read template file")
	} else if !utf8.Valid(data) {
		return "", false, errors.New("template file is not UTF-8 encoded")
	}
	return string(data), true, nil
}

// LoadTemplate parses the template selected by the flags, with the json and
// describe functions available. It returns nil with no error if no template
// was given.
func (f *TemplateFlags) LoadTemplate() (*template.Template, error) {
	text, ok, err := f.source()
	if err != nil || !ok {
		return nil, err
	}
	result, err := template.New("output").Funcs(builtins).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse template")
	}
	return result, nil
}
