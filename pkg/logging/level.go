package logging

// Level is the verbosity of unixmode's diagnostic output. Levels are ordered,
// so a logger emits every message at or below its own level.
type Level uint

const (
	// LevelDisabled suppresses all diagnostic output, including errors.
	LevelDisabled Level = iota
	// LevelError reports failures, such as unreadable configuration.
	LevelError
	// LevelWarn adds problems that don't stop a command, such as paths that
	// couldn't be queried. It is the default.
	LevelWarn
	// LevelInfo adds a line for each change made by chmod.
	LevelInfo
	// LevelDebug adds the configuration source, the log level, and glob
	// expansion counts.
	LevelDebug
	// LevelTrace adds the raw mode value of every parsed argument and queried
	// path.
	LevelTrace
)

// levelNames are the configuration and command line names of each level,
// indexed by level.
var levelNames = [...]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// NameToLevel converts a level name, as used in the configuration file and the
// --log-level flag, to a Level. It returns false (and LevelDisabled) if the
// name isn't recognized.
func NameToLevel(name string) (Level, bool) {
	for level, candidate := range levelNames {
		if candidate == name {
			return Level(level), true
		}
	}
	return LevelDisabled, false
}

// String returns the name of the level, or "unknown" for out-of-range values.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}
