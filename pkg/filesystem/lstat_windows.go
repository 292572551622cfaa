package filesystem

import (
	"os"
	"path/filepath"

	"github.com/mutagen-io/unixmode/pkg/mode"
)

// Lstat returns metadata for the filesystem entry at the specified path,
// without following symbolic links. Windows has no raw Unix mode, so one is
// synthesized from the os package's FileMode.
func Lstat(path string) (*Metadata, error) {
	// Query the metadata.
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	// Success.
	return &Metadata{
		Path: path,
		Name: filepath.Base(path),
		Mode: mode.FromFileMode(info.Mode()),
		Size: uint64(info.Size()),
	}, nil
}
