package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mutagen-io/unixmode/pkg/logging"
)

const (
	// atomicWriteTemporaryNamePrefix is the file name prefix to use for
	// intermediate temporary files used in atomic writes.
	atomicWriteTemporaryNamePrefix = ".unixmode-atomic-write"
)

// removeTemporary removes an intermediate temporary file, logging any failure.
func removeTemporary(path string, logger *logging.Logger) {
	if err := os.Remove(path); err != nil {
		logger.Warn(errors.Wrap(err, "unable to remove temporary file"))
	}
}

// WriteFileAtomic writes a file to disk in an atomic fashion by using an
// intermediate temporary file that is swapped in place using a rename
// operation. The permissions argument is a raw Unix mode, of which only the
// permission and special bits are used.
func WriteFileAtomic(path string, data []byte, permissions uint32, logger *logging.Logger) error {
	// Create a temporary file. The os package already uses secure permissions
	// for creating temporary files, so we don't need to change them.
	temporary, err := os.CreateTemp(filepath.Dir(path), atomicWriteTemporaryNamePrefix)
	if err != nil {
		return errors.Wrap(err, "unable to create temporary file")
	}

	// Write data.
	if _, err = temporary.Write(data); err != nil {
		temporary.Close()
		removeTemporary(temporary.Name(), logger)
		return errors.Wrap(err, "unable to write data to temporary file")
	}

	// Close out the file.
	if err = temporary.Close(); err != nil {
		removeTemporary(temporary.Name(), logger)
		return errors.Wrap(err, "unable to close temporary file")
	}

	// Set the file's permissions.
	if err = SetPermissionsByPath(temporary.Name(), permissions); err != nil {
		removeTemporary(temporary.Name(), logger)
		return errors.Wrap(err, "unable to change file permissions")
	}

	// Rename the file.
	if err = os.Rename(temporary.Name(), path); err != nil {
		removeTemporary(temporary.Name(), logger)
		return errors.Wrap(err, "unable to rename file")
	}

	// Success.
	return nil
}
