package mode

import (
	"io/fs"
)

// FromFileMode converts a mode in the representation used by the io/fs package
// into a raw Unix mode value. Irregular files are given a type code of 0, which
// classifies as TypeUnknown.
func FromFileMode(fileMode fs.FileMode) uint32 {
	// Start with the permission bits.
	result := uint32(fileMode.Perm())

	// Add the special bits.
	if fileMode&fs.ModeSetuid != 0 {
		result |= ModeSetuid
	}
	if fileMode&fs.ModeSetgid != 0 {
		result |= ModeSetgid
	}
	if fileMode&fs.ModeSticky != 0 {
		result |= ModeSticky
	}

	// Add the type code. Character devices also carry fs.ModeDevice, so they
	// need to be checked first.
	switch {
	case fileMode&fs.ModeDir != 0:
		result |= TypeDir.code()
	case fileMode&fs.ModeSymlink != 0:
		result |= TypeSymlink.code()
	case fileMode&fs.ModeCharDevice != 0:
		result |= TypeCharDevice.code()
	case fileMode&fs.ModeDevice != 0:
		result |= TypeBlockDevice.code()
	case fileMode&fs.ModeNamedPipe != 0:
		result |= TypeFifo.code()
	case fileMode&fs.ModeSocket != 0:
		result |= TypeSocket.code()
	case fileMode&fs.ModeIrregular != 0:
	default:
		result |= TypeFile.code()
	}

	// Done.
	return result
}

// ToFileMode converts a raw Unix mode value into the representation used by
// the io/fs package. Whiteout entries and unrecognized types are reported as
// fs.ModeIrregular.
func ToFileMode(mode uint32) fs.FileMode {
	// Start with the permission bits.
	result := fs.FileMode(mode & PermissionsMask)

	// Add the special bits.
	if IsSetuid(mode) {
		result |= fs.ModeSetuid
	}
	if IsSetgid(mode) {
		result |= fs.ModeSetgid
	}
	if IsSticky(mode) {
		result |= fs.ModeSticky
	}

	// Add the type bits.
	switch Classify(mode) {
	case TypeFile:
	case TypeDir:
		result |= fs.ModeDir
	case TypeSymlink:
		result |= fs.ModeSymlink
	case TypeSocket:
		result |= fs.ModeSocket
	case TypeFifo:
		result |= fs.ModeNamedPipe
	case TypeBlockDevice:
		result |= fs.ModeDevice
	case TypeCharDevice:
		result |= fs.ModeDevice | fs.ModeCharDevice
	default:
		result |= fs.ModeIrregular
	}

	// Done.
	return result
}
