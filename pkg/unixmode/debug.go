package unixmode

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for unixmode. It is
// set automatically based on the UNIXMODE_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("UNIXMODE_DEBUG") == "1"
}
