package mode

// IsFile reports whether mode describes a regular file.
func IsFile(mode uint32) bool {
	return Classify(mode) == TypeFile
}

// IsDir reports whether mode describes a directory.
func IsDir(mode uint32) bool {
	return Classify(mode) == TypeDir
}

// IsSymlink reports whether mode describes a symbolic link.
func IsSymlink(mode uint32) bool {
	return Classify(mode) == TypeSymlink
}

// IsFifo reports whether mode describes a named pipe.
func IsFifo(mode uint32) bool {
	return Classify(mode) == TypeFifo
}

// IsCharDevice reports whether mode describes a character device.
func IsCharDevice(mode uint32) bool {
	return Classify(mode) == TypeCharDevice
}

// IsBlockDevice reports whether mode describes a block device.
func IsBlockDevice(mode uint32) bool {
	return Classify(mode) == TypeBlockDevice
}

// IsSocket reports whether mode describes a Unix domain socket.
func IsSocket(mode uint32) bool {
	return Classify(mode) == TypeSocket
}
