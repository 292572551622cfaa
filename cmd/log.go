package cmd

import (
	"io"
	"log"

	"github.com/fatih/color"

	"github.com/mutagen-io/unixmode/pkg/logging"
)

func init() {
	// Silence the default logger until logging is configured.
	log.SetOutput(io.Discard)
}

// ConfigureLogging directs the standard logger to standard error and creates a
// root logger for the specified level. If the level is LevelDisabled, the
// standard logger remains silenced.
func ConfigureLogging(level logging.Level) *logging.Logger {
	log.SetFlags(0)
	if level == logging.LevelDisabled {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(color.Error)
	}
	return logging.NewLogger(level)
}
