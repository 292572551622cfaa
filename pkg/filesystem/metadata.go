package filesystem

import (
	"github.com/mutagen-io/unixmode/pkg/mode"
)

// Metadata encodes information about a filesystem entry.
type Metadata struct {
	// Path is the path used to access the filesystem entry.
	Path string
	// Name is the base name of the filesystem entry.
	Name string
	// Mode is the raw Unix mode of the filesystem entry. On POSIX systems, it
	// is the st_mode field of the stat_t structure. On Windows, it is
	// synthesized from the os package's FileMode.
	Mode uint32
	// Size is the size of the filesystem entry in bytes.
	Size uint64
}

// Type returns the file type of the entry.
func (m *Metadata) Type() mode.Type {
	return mode.Classify(m.Mode)
}
