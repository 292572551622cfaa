//go:build !windows
// +build !windows

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// lstatRetryingOnEINTR is a wrapper around the lstat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func lstatRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Lstat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// chmodRetryingOnEINTR is a wrapper around the chmod system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func chmodRetryingOnEINTR(path string, mode uint32) error {
	for {
		err := unix.Chmod(path, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}
