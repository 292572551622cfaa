package mode

import (
	"fmt"
)

// Mode is a raw Unix mode value. It exists so that mode values can be printed
// and serialized in their conventional forms. The package-level functions
// accept plain uint32 values, so a Mode can be converted freely.
type Mode uint32

// Type returns the file type encoded in m.
func (m Mode) Type() Type {
	return Classify(uint32(m))
}

// Permissions returns the permission and special bits of m.
func (m Mode) Permissions() Mode {
	return m & Mode(PermissionsMask|SpecialMask)
}

// String returns the ls -l rendering of m.
func (m Mode) String() string {
	return String(uint32(m))
}

// Octal returns m formatted as a zero-padded, 7-digit octal number. Values
// with bits above the type field set are printed in full.
func (m Mode) Octal() string {
	return fmt.Sprintf("%07o", uint32(m))
}

// MarshalText implements encoding.TextMarshaler. Modes are encoded in octal.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.Octal()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both octal and symbolic
// forms are accepted. The receiver is left unmodified on failure.
func (m *Mode) UnmarshalText(textBytes []byte) error {
	// Perform parsing.
	if result, err := Parse(string(textBytes)); err != nil {
		return err
	} else {
		*m = Mode(result)
	}

	// Success.
	return nil
}
