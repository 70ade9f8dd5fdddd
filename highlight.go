package linekit

import (
	"github.com/fatih/color"
)

// DefaultColor is the highlight color used when none is configured.
const DefaultColor = "hi-red"

// colorsByName maps configurable color names to terminal attributes.
var colorsByName = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

// Highlighter renders lines for output, wrapping matched lines in color
// escape sequences. The color reset is placed before the line terminator so
// coloring never bleeds into the next line or into the terminal state after
// the stream ends.
type Highlighter struct {
	color *color.Color
}

// NewHighlighter returns a Highlighter using the named color, falling back
// to DefaultColor for unknown names. Color output is forced on: the sink is
// usually a pipe, and the whole point is to emit escapes into it.
func NewHighlighter(name string) *Highlighter {
	attr, ok := colorsByName[name]
	if !ok {
		attr = colorsByName[DefaultColor]
	}

	c := color.New(attr)
	c.EnableColor()
	return &Highlighter{color: c}
}

// Render returns the bytes to emit for a line. An unmatched line is
// returned unchanged, terminator included. A matched line has its content
// wrapped in color-start and color-reset escapes, with the original
// terminator kept after the reset. Empty content needs no colorization and
// is also returned unchanged.
func (h *Highlighter) Render(line []byte, matched bool) []byte {
	if !matched {
		return line
	}

	content, terminator := splitTerminator(line)
	if len(content) == 0 {
		return line
	}

	colored := h.color.Sprint(string(content))
	out := make([]byte, 0, len(colored)+len(terminator))
	out = append(out, colored...)
	out = append(out, terminator...)
	return out
}
