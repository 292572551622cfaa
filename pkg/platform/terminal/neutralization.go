package terminal

import (
	"strings"
)

// controlCharacterNeutralizer replaces the control characters that could alter
// terminal state or break line-oriented output with caret or backslash escapes.
var controlCharacterNeutralizer = strings.NewReplacer(
	"\x1b", "^[",
	"\x07", "^G",
	"\x08", "^H",
	"\x7f", "^?",
	"\r", "\\r",
	"\n", "\\n",
	"\t", "\\t",
)

// NeutralizeControlCharacters returns a copy of a string with any terminal
// control characters neutralized. It's used when printing filesystem names,
// which may contain arbitrary bytes.
func NeutralizeControlCharacters(value string) string {
	return controlCharacterNeutralizer.Replace(value)
}
