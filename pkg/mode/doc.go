// Package mode decodes raw Unix file mode values into their file type,
// permission bits, and special (setuid, setgid, and sticky) bits, and renders
// them in the 10-character form shown by ls -l (e.g. "drwxr-xr-x").
//
// The encoding is interpreted directly from the integer value, so this package
// behaves identically on every platform and never consults the operating
// system. Any 32-bit value is a valid input and every decoding function is
// total. Bits outside of the type, permission, and special bit ranges are
// ignored.
package mode
