// Package filesystem acquires raw mode values from filesystem entries, applies
// permission bits, and expands path arguments. The decoding itself lives in the
// mode package.
package filesystem
