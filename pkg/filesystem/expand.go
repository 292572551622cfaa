package filesystem

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// globMetaCharacters are the characters that make a path a glob pattern.
const globMetaCharacters = "*?[{"

// isPattern reports whether a slash-separated path contains glob syntax.
func isPattern(value string) bool {
	return strings.ContainsAny(value, globMetaCharacters)
}

// splitPattern splits a slash-separated pattern into the longest leading
// directory without glob syntax and the remaining pattern relative to it.
func splitPattern(pattern string) (string, string) {
	components := strings.Split(pattern, "/")
	for i, component := range components {
		if isPattern(component) {
			base := strings.Join(components[:i], "/")
			if base == "" {
				if i > 0 {
					base = "/"
				} else {
					base = "."
				}
			}
			return base, strings.Join(components[i:], "/")
		}
	}
	return path.Dir(pattern), path.Base(pattern)
}

// Expand expands the specified path arguments. Arguments without glob syntax
// are passed through unchanged, even if they don't exist, so that the caller
// can report them individually. Arguments that name an existing entry are also
// passed through unchanged, even if they contain glob syntax. Glob arguments
// support doublestar syntax (e.g. "src/**/*.go") and must match at least one
// entry.
func Expand(arguments []string) ([]string, error) {
	var result []string
	for _, argument := range arguments {
		// Handle plain paths. Existing entries whose names happen to contain
		// glob syntax are also taken literally.
		pattern := filepath.ToSlash(argument)
		if !isPattern(pattern) {
			result = append(result, argument)
			continue
		} else if _, err := os.Lstat(argument); err == nil {
			result = append(result, argument)
			continue
		}

		// Perform matching relative to the non-pattern prefix.
		base, relative := splitPattern(pattern)
		matches, err := doublestar.Glob(os.DirFS(filepath.FromSlash(base)), relative)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to expand pattern %q", argument)
		} else if len(matches) == 0 {
			return nil, errors.Errorf("no matches for pattern %q", argument)
		}

		// Record matches.
		for _, match := range matches {
			if base == "." {
				result = append(result, filepath.FromSlash(match))
			} else {
				result = append(result, filepath.Join(filepath.FromSlash(base), filepath.FromSlash(match)))
			}
		}
	}
	return result, nil
}
