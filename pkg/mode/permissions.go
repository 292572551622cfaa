package mode

const (
	// PermissionsMask is a bit mask that isolates the permission bits.
	PermissionsMask = uint32(0777)

	// ModeSetuid is the set-user-ID bit.
	ModeSetuid = uint32(04000)
	// ModeSetgid is the set-group-ID bit.
	ModeSetgid = uint32(02000)
	// ModeSticky is the sticky bit.
	ModeSticky = uint32(01000)
	// SpecialMask is a bit mask that isolates the setuid, setgid, and sticky
	// bits.
	SpecialMask = ModeSetuid | ModeSetgid | ModeSticky
)

// Accessor identifies one of the three permission groups in a mode value. Its
// value is the index of the group, counting up from the least significant.
type Accessor uint8

const (
	// AccessorOther is access by anyone other than the owner or group.
	AccessorOther Accessor = iota
	// AccessorGroup is access by members of the file's group.
	AccessorGroup
	// AccessorOwner is access by the file's owner.
	AccessorOwner
)

// Accessors lists all accessors in rendering order.
var Accessors = [3]Accessor{AccessorOwner, AccessorGroup, AccessorOther}

// String provides a human-readable name for a.
func (a Accessor) String() string {
	switch a {
	case AccessorOwner:
		return "owner"
	case AccessorGroup:
		return "group"
	case AccessorOther:
		return "other"
	default:
		return "unknown"
	}
}

// Access identifies one of the three permission bits within a group. Its value
// is the index of the bit within the group, counting up from the least
// significant.
type Access uint8

const (
	// AccessExecute is permission to execute a file or, for a directory, to
	// access entries within it by name.
	AccessExecute Access = iota
	// AccessWrite is permission to write.
	AccessWrite
	// AccessRead is permission to read a file or list a directory.
	AccessRead
)

// Accesses lists all access kinds in rendering order.
var Accesses = [3]Access{AccessRead, AccessWrite, AccessExecute}

// String provides a human-readable name for a.
func (a Access) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessExecute:
		return "execute"
	default:
		return "unknown"
	}
}

// bit returns the mode bit for the specified accessor and access, or 0 if
// either is out of range.
func bit(by Accessor, access Access) uint32 {
	if by > AccessorOwner || access > AccessRead {
		return 0
	}
	return 1 << (3*uint32(by) + uint32(access))
}

// IsAllowed reports whether mode grants the specified access to the specified
// accessor.
func IsAllowed(by Accessor, access Access, mode uint32) bool {
	return mode&bit(by, access) != 0
}

// IsSetuid reports whether the set-user-ID bit is set.
func IsSetuid(mode uint32) bool {
	return mode&ModeSetuid != 0
}

// IsSetgid reports whether the set-group-ID bit is set.
func IsSetgid(mode uint32) bool {
	return mode&ModeSetgid != 0
}

// IsSticky reports whether the sticky bit is set. The bit is reported
// regardless of file type.
func IsSticky(mode uint32) bool {
	return mode&ModeSticky != 0
}
