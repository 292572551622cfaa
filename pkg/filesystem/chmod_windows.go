package filesystem

import (
	"os"

	"github.com/mutagen-io/unixmode/pkg/mode"
)

// SetPermissionsByPath sets the permission bits of the filesystem entry at the
// specified path. On Windows, only the owner write bit has any effect, and the
// special bits are ignored.
func SetPermissionsByPath(path string, permissions uint32) error {
	return os.Chmod(path, mode.ToFileMode(permissions&mode.PermissionsMask).Perm())
}
