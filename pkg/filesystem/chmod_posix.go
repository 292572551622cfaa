//go:build !windows
// +build !windows

package filesystem

import (
	"os"

	"github.com/mutagen-io/unixmode/pkg/mode"
)

// SetPermissionsByPath sets the permission and special bits of the filesystem
// entry at the specified path. Any type bits in permissions are ignored.
// Symbolic links are followed.
func SetPermissionsByPath(path string, permissions uint32) error {
	permissions &= mode.PermissionsMask | mode.SpecialMask
	if err := chmodRetryingOnEINTR(path, permissions); err != nil {
		return &os.PathError{Op: "chmod", Path: path, Err: err}
	}
	return nil
}
