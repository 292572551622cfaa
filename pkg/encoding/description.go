package encoding

import (
	"github.com/mutagen-io/unixmode/pkg/mode"
)

// Permissions describes the access granted to a single accessor.
type Permissions struct {
	// Read indicates whether or not read access is granted.
	Read bool `json:"read" yaml:"read"`
	// Write indicates whether or not write access is granted.
	Write bool `json:"write" yaml:"write"`
	// Execute indicates whether or not execute access is granted.
	Execute bool `json:"execute" yaml:"execute"`
}

// describePermissions computes the Permissions for an accessor.
func describePermissions(by mode.Accessor, value uint32) Permissions {
	return Permissions{
		Read:    mode.IsAllowed(by, mode.AccessRead, value),
		Write:   mode.IsAllowed(by, mode.AccessWrite, value),
		Execute: mode.IsAllowed(by, mode.AccessExecute, value),
	}
}

// Description is the serializable form of a decoded mode value. It is the
// adapter between the mode package and external formats (JSON, YAML, and
// output templates), so that the mode package itself doesn't carry any
// serialization concerns.
type Description struct {
	// Path is the path of the filesystem entry that the mode was read from,
	// if any.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Mode is the raw mode value as a 7-digit octal string.
	Mode string `json:"mode" yaml:"mode"`
	// Type is the name of the file type.
	Type string `json:"type" yaml:"type"`
	// String is the ls -l rendering of the mode.
	String string `json:"string" yaml:"string"`
	// Owner describes the permissions granted to the owner.
	Owner Permissions `json:"owner" yaml:"owner"`
	// Group describes the permissions granted to the group.
	Group Permissions `json:"group" yaml:"group"`
	// Other describes the permissions granted to others.
	Other Permissions `json:"other" yaml:"other"`
	// Setuid indicates whether or not the set-user-ID bit is set.
	Setuid bool `json:"setuid" yaml:"setuid"`
	// Setgid indicates whether or not the set-group-ID bit is set.
	Setgid bool `json:"setgid" yaml:"setgid"`
	// Sticky indicates whether or not the sticky bit is set.
	Sticky bool `json:"sticky" yaml:"sticky"`
	// Size is the size of the filesystem entry in bytes, if known.
	Size *uint64 `json:"size,omitempty" yaml:"size,omitempty"`

	// value is the raw mode value. It isn't serialized.
	value uint32
}

// Value returns the raw mode value from which the description was computed.
// Descriptions that were decoded rather than computed report 0.
func (d *Description) Value() uint32 {
	return d.value
}

// Describe decodes a raw mode value into a Description.
func Describe(value uint32) *Description {
	return &Description{
		Mode:   mode.Mode(value).Octal(),
		Type:   mode.Classify(value).String(),
		String: mode.String(value),
		Owner:  describePermissions(mode.AccessorOwner, value),
		Group:  describePermissions(mode.AccessorGroup, value),
		Other:  describePermissions(mode.AccessorOther, value),
		Setuid: mode.IsSetuid(value),
		Setgid: mode.IsSetgid(value),
		Sticky: mode.IsSticky(value),
		value:  value,
	}
}
