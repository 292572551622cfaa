package mode

const (
	// TypeMask is a bit mask that isolates the file type field (bits 12-15) of
	// a mode value. It is equivalent to S_IFMT.
	TypeMask = uint32(0170000)
	// typeShift is the offset of the file type field within a mode value.
	typeShift = 12
)

const (
	// TypeCodeFifo is the type code of a named pipe.
	TypeCodeFifo = 001
	// TypeCodeCharDevice is the type code of a character device.
	TypeCodeCharDevice = 002
	// TypeCodeDir is the type code of a directory.
	TypeCodeDir = 004
	// TypeCodeBlockDevice is the type code of a block device.
	TypeCodeBlockDevice = 006
	// TypeCodeFile is the type code of a regular file.
	TypeCodeFile = 010
	// TypeCodeSymlink is the type code of a symbolic link.
	TypeCodeSymlink = 012
	// TypeCodeSocket is the type code of a Unix domain socket.
	TypeCodeSocket = 014
	// TypeCodeWhiteout is the type code of a whiteout entry.
	TypeCodeWhiteout = 016
)

// typeCode returns the 4-bit file type field of a mode value.
func typeCode(mode uint32) uint32 {
	return (mode >> typeShift) & 017
}

// Type is the file type encoded in a mode value.
//
// The set of types is open-ended: values not recognized by this package are
// classified as TypeUnknown, and future versions may recognize additional type
// codes. Callers that switch on a Type should always include a default case.
type Type uint8

const (
	// TypeUnknown indicates a type code not recognized by this package. It is
	// the zero value so that an unset Type is never mistaken for a real type.
	TypeUnknown Type = iota
	// TypeFile indicates a regular file.
	TypeFile
	// TypeDir indicates a directory.
	TypeDir
	// TypeSymlink indicates a symbolic link.
	TypeSymlink
	// TypeSocket indicates a Unix domain socket.
	TypeSocket
	// TypeFifo indicates a named pipe (FIFO).
	TypeFifo
	// TypeBlockDevice indicates a block device, such as a disk.
	TypeBlockDevice
	// TypeCharDevice indicates a character device, such as /dev/null.
	TypeCharDevice
	// TypeWhiteout indicates a removed entry in a union filesystem.
	TypeWhiteout
)

// Classify returns the file type encoded in mode. Only bits 12-15 are
// consulted.
func Classify(mode uint32) Type {
	switch typeCode(mode) {
	case TypeCodeFifo:
		return TypeFifo
	case TypeCodeCharDevice:
		return TypeCharDevice
	case TypeCodeDir:
		return TypeDir
	case TypeCodeBlockDevice:
		return TypeBlockDevice
	case TypeCodeFile:
		return TypeFile
	case TypeCodeSymlink:
		return TypeSymlink
	case TypeCodeSocket:
		return TypeSocket
	case TypeCodeWhiteout:
		return TypeWhiteout
	default:
		return TypeUnknown
	}
}

// code returns the type code for t, shifted into position within a mode value.
// TypeUnknown yields 0.
func (t Type) code() uint32 {
	var code uint32
	switch t {
	case TypeFifo:
		code = TypeCodeFifo
	case TypeCharDevice:
		code = TypeCodeCharDevice
	case TypeDir:
		code = TypeCodeDir
	case TypeBlockDevice:
		code = TypeCodeBlockDevice
	case TypeFile:
		code = TypeCodeFile
	case TypeSymlink:
		code = TypeCodeSymlink
	case TypeSocket:
		code = TypeCodeSocket
	case TypeWhiteout:
		code = TypeCodeWhiteout
	}
	return code << typeShift
}

// Character returns the character used for t in the first position of a
// rendered mode.
func (t Type) Character() byte {
	switch t {
	case TypeFifo:
		return 'p'
	case TypeCharDevice:
		return 'c'
	case TypeDir:
		return 'd'
	case TypeBlockDevice:
		return 'b'
	case TypeFile:
		return '-'
	case TypeSymlink:
		return 'l'
	case TypeSocket:
		return 's'
	case TypeWhiteout:
		return 'w'
	default:
		return '?'
	}
}

// typeForCharacter is the inverse of Type.Character.
func typeForCharacter(c byte) (Type, bool) {
	switch c {
	case 'p':
		return TypeFifo, true
	case 'c':
		return TypeCharDevice, true
	case 'd':
		return TypeDir, true
	case 'b':
		return TypeBlockDevice, true
	case '-':
		return TypeFile, true
	case 'l':
		return TypeSymlink, true
	case 's':
		return TypeSocket, true
	case 'w':
		return TypeWhiteout, true
	case '?':
		return TypeUnknown, true
	default:
		return TypeUnknown, false
	}
}

// String provides a human-readable name for t.
func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	case TypeSocket:
		return "socket"
	case TypeFifo:
		return "fifo"
	case TypeBlockDevice:
		return "block-device"
	case TypeCharDevice:
		return "char-device"
	case TypeWhiteout:
		return "whiteout"
	default:
		return "unknown"
	}
}
