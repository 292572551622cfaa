package mode

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseOctal parses an octal mode specification, such as "0040755" or "755".
// An "0o" prefix is allowed. The value must fit within 32 bits, but is
// otherwise unrestricted.
func ParseOctal(value string) (uint32, error) {
	// Strip any Go-style octal prefix.
	if strings.HasPrefix(value, "0o") || strings.HasPrefix(value, "0O") {
		value = value[2:]
	}

	// Perform parsing.
	if value == "" {
		return 0, errors.New("empty mode specification")
	} else if m, err := strconv.ParseUint(value, 8, 32); err != nil {
		return 0, errors.Wrap(err, "unable to parse numeric value")
	} else {
		return uint32(m), nil
	}
}

// ParseSymbolic parses the 10-character form produced by String back into a
// mode value. The '?' type character yields a type code of 0. Every string
// produced by String for a recognized type is parsed back to the original type,
// permission, and special bits.
func ParseSymbolic(value string) (uint32, error) {
	// Verify the length.
	if len(value) != RenderedLength {
		return 0, errors.Errorf("symbolic mode must be %d characters", RenderedLength)
	}

	// Decode the type.
	t, ok := typeForCharacter(value[0])
	if !ok {
		return 0, errors.Errorf("invalid file type character: %q", value[0])
	}
	result := t.code()

	// Decode the permission and special bits.
	r := 1
	for _, by := range Accessors {
		for _, access := range Accesses {
			c := value[r]
			r++
			if c == '-' {
				continue
			}
			switch access {
			case AccessRead:
				if c != 'r' {
					return 0, errors.Errorf("invalid %s read character: %q", by, c)
				}
				result |= bit(by, access)
			case AccessWrite:
				if c != 'w' {
					return 0, errors.Errorf("invalid %s write character: %q", by, c)
				}
				result |= bit(by, access)
			case AccessExecute:
				special, set, unset := specialFor(by)
				switch c {
				case 'x':
					result |= bit(by, access)
				case set:
					result |= bit(by, access) | special
				case unset:
					result |= special
				default:
					return 0, errors.Errorf("invalid %s execute character: %q", by, c)
				}
			}
		}
	}

	// Success.
	return result, nil
}

// Parse parses either a symbolic or an octal mode specification. Values that
// are exactly 10 characters long and don't begin with a digit are treated as
// symbolic.
func Parse(value string) (uint32, error) {
	if len(value) == RenderedLength && !('0' <= value[0] && value[0] <= '9') {
		return ParseSymbolic(value)
	}
	return ParseOctal(value)
}
