package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/mutagen-io/unixmode/pkg/mode"
)

// typeColors maps file types to the colors used for their type characters.
// Regular files are printed without color.
var typeColors = map[mode.Type]*color.Color{
	mode.TypeDir:         color.New(color.FgBlue, color.Bold),
	mode.TypeSymlink:     color.New(color.FgCyan),
	mode.TypeSocket:      color.New(color.FgMagenta),
	mode.TypeFifo:        color.New(color.FgYellow),
	mode.TypeBlockDevice: color.New(color.FgYellow, color.Bold),
	mode.TypeCharDevice:  color.New(color.FgYellow, color.Bold),
	mode.TypeWhiteout:    color.New(color.FgHiBlack),
	mode.TypeUnknown:     color.New(color.FgRed),
}

// specialColor is the color used for setuid, setgid, and sticky indicators.
var specialColor = color.New(color.FgRed, color.Bold)

// formatRendering renders a mode value, colorizing the type character and any
// special bit indicators if color output is enabled.
func formatRendering(value uint32) string {
	rendered := mode.String(value)
	if color.NoColor {
		return rendered
	}

	var builder strings.Builder
	if c, ok := typeColors[mode.Classify(value)]; ok {
		builder.WriteString(c.Sprint(rendered[:1]))
	} else {
		builder.WriteByte(rendered[0])
	}
	for i := 1; i < len(rendered); i++ {
		if strings.IndexByte("sStT", rendered[i]) != -1 {
			builder.WriteString(specialColor.Sprint(rendered[i : i+1]))
		} else {
			builder.WriteByte(rendered[i])
		}
	}
	return builder.String()
}

// errPartialFailure is returned by commands that continue past per-path
// failures once all paths have been processed.
var errPartialFailure = errors.New("unable to process one or more paths")
