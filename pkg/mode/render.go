package mode

// RenderedLength is the length of the string produced by String.
const RenderedLength = 10

// specialFor returns the special bit that modifies the execute character of the
// specified accessor along with the characters used when execution is allowed
// and denied.
func specialFor(by Accessor) (uint32, byte, byte) {
	switch by {
	case AccessorOwner:
		return ModeSetuid, 's', 'S'
	case AccessorGroup:
		return ModeSetgid, 's', 'S'
	default:
		return ModeSticky, 't', 'T'
	}
}

// permissionCharacter returns the character for a single permission position.
func permissionCharacter(by Accessor, access Access, mode uint32) byte {
	allowed := IsAllowed(by, access, mode)
	switch access {
	case AccessRead:
		if allowed {
			return 'r'
		}
	case AccessWrite:
		if allowed {
			return 'w'
		}
	case AccessExecute:
		if special, set, unset := specialFor(by); mode&special != 0 {
			if allowed {
				return set
			}
			return unset
		} else if allowed {
			return 'x'
		}
	}
	return '-'
}

// String renders mode in the 10-character form shown by ls -l, for example
// "drwxr-xr-x". The first character identifies the file type and the remaining
// nine give the read, write, and execute permissions for the owner, group, and
// others, in that order. The execute positions reflect the setuid, setgid, and
// sticky bits respectively, using a lower-case letter if execution is also
// allowed and an upper-case letter if it isn't.
func String(mode uint32) string {
	var buffer [RenderedLength]byte
	buffer[0] = Classify(mode).Character()
	w := 1
	for _, by := range Accessors {
		for _, access := range Accesses {
			buffer[w] = permissionCharacter(by, access, mode)
			w++
		}
	}
	return string(buffer[:])
}
