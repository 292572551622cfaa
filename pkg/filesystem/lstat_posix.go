//go:build !windows
// +build !windows

package filesystem

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Lstat returns metadata for the filesystem entry at the specified path,
// without following symbolic links. Errors are returned as *os.PathError, so
// os.IsNotExist and friends can be used to inspect them.
func Lstat(path string) (*Metadata, error) {
	// Query the raw metadata.
	var metadata unix.Stat_t
	if err := lstatRetryingOnEINTR(path, &metadata); err != nil {
		return nil, &os.PathError{Op: "lstat", Path: path, Err: err}
	}

	// Success.
	return &Metadata{
		Path: path,
		Name: filepath.Base(path),
		Mode: uint32(metadata.Mode),
		Size: uint64(metadata.Size),
	}, nil
}
