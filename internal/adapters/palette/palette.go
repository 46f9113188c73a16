// Package palette turns style names into ANSI SGR markers and implements
// ports.Styler. A Palette maps each style tag to one escape sequence; Reset
// always maps to "\x1b[0m".
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/corey/lenz/internal/ports"
)

// Style names accepted in a palette definition.
var attributes = map[string]string{
	"bold":      termenv.BoldSeq,
	"faint":     termenv.FaintSeq,
	"italic":    termenv.ItalicSeq,
	"underline": termenv.UnderlineSeq,
	"blink":     termenv.BlinkSeq,
	"reverse":   termenv.ReverseSeq,
}

var colors = map[string]termenv.ANSIColor{
	"black":   termenv.ANSIBlack,
	"red":     termenv.ANSIRed,
	"green":   termenv.ANSIGreen,
	"yellow":  termenv.ANSIYellow,
	"blue":    termenv.ANSIBlue,
	"magenta": termenv.ANSIMagenta,
	"cyan":    termenv.ANSICyan,
	"white":   termenv.ANSIWhite,
}

const (
	defaultFG = "39"
	defaultBG = "49"
	bgPrefix  = "bg-"
)

// ResetMarker ends every style.
var ResetMarker = termenv.CSI + termenv.ResetSeq + "m"

// Palette is an immutable tag to marker table.
type Palette struct {
	markers map[ports.StyleTag]string
}

var _ ports.Styler = (*Palette)(nil)

// DefaultStyles returns the built-in style names per tag.
func DefaultStyles() map[string][]string {
	return map[string][]string{
		ports.Highlight.String():       {"bg-red"},
		ports.LineNumber.String():      {"green"},
		ports.LineNumberMatch.String(): {"red"},
		ports.LineNumberMiss.String():  {"green"},
		ports.Heading.String():         {"bold"},
		ports.Path.String():            {"italic", "white"},
		ports.Count.String():           {"green"},
	}
}

// New builds a palette from tag names to style names. Tags missing from
// styles keep their default; an empty list disables styling for that tag.
func New(styles map[string][]string) (*Palette, error) {
	merged := DefaultStyles()
	for name, list := range styles {
		merged[name] = list
	}

	p := &Palette{markers: make(map[ports.StyleTag]string, len(merged)+1)}
	p.markers[ports.Reset] = ResetMarker

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tag, ok := ports.ParseStyleTag(name)
		if !ok || tag == ports.Reset {
			return nil, fmt.Errorf("palette: unknown style tag %q", name)
		}
		marker, err := Sequence(merged[name]...)
		if err != nil {
			return nil, fmt.Errorf("palette: %s: %w", name, err)
		}
		p.markers[tag] = marker
	}
	return p, nil
}

// Marker returns the escape sequence for tag.
func (p *Palette) Marker(tag ports.StyleTag) string {
	return p.markers[tag]
}

// Sequence builds one SGR sequence from style names. No names yields "".
func Sequence(names ...string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	codes := make([]string, 0, len(names))
	for _, name := range names {
		c, err := code(name)
		if err != nil {
			return "", err
		}
		codes = append(codes, c)
	}
	return termenv.CSI + strings.Join(codes, ";") + "m", nil
}

func code(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if seq, ok := attributes[name]; ok {
		return seq, nil
	}
	bg := strings.HasPrefix(name, bgPrefix)
	color := strings.TrimPrefix(name, bgPrefix)
	if color == "default" {
		if bg {
			return defaultBG, nil
		}
		return defaultFG, nil
	}
	if c, ok := colors[color]; ok {
		return c.Sequence(bg), nil
	}
	return "", fmt.Errorf("unknown style %q", name)
}

// Plain is a Styler that emits no markers.
type Plain struct{}

// Marker returns "".
func (Plain) Marker(ports.StyleTag) string { return "" }
