// Package cell renders one line of a searched file: its line number in a
// fixed-width gutter followed by the line content with every occurrence of
// the query highlighted.
package cell

import (
	"strconv"
	"strings"

	"github.com/corey/lenz/internal/domain/match"
	"github.com/corey/lenz/internal/ports"
)

// Policy selects how the line number is colored.
type Policy int

const (
	// Static always uses the LineNumber style.
	Static Policy = iota
	// Dynamic uses LineNumberMatch for matching lines and LineNumberMiss otherwise.
	Dynamic
)

// Layout controls the horizontal placement of a rendered cell.
type Layout struct {
	// Indent is the number of spaces before the line number.
	Indent int
	// NumberWidth is the number of digits the gutter is sized for. Wider
	// numbers push the content right instead of shrinking the gap below one space.
	NumberWidth int
}

// DefaultLayout is one space of indent and a gutter sized for seven digits.
func DefaultLayout() Layout {
	return Layout{Indent: 1, NumberWidth: 7}
}

// Cell is one line of a file bound to the scanner of the current search.
// A Cell is immutable.
type Cell struct {
	scanner *match.Scanner
	content string
	lineNo  int
	indent  int
}

// New builds a cell for content at lineNo (1-based).
func New(sc *match.Scanner, content string, lineNo, indent int) Cell {
	if indent < 0 {
		indent = 0
	}
	return Cell{scanner: sc, content: content, lineNo: lineNo, indent: indent}
}

// Query returns the query the cell is searched for.
func (c Cell) Query() string { return c.scanner.Query() }

// Content returns the line without its terminator.
func (c Cell) Content() string { return c.content }

// LineNo returns the 1-based line number.
func (c Cell) LineNo() int { return c.lineNo }

// Matches reports whether the line contains the query.
func (c Cell) Matches() bool {
	return c.scanner.Matches(c.content)
}

// Render returns the display line, without a trailing newline:
// indent, colored line number, gap, highlighted content.
func (c Cell) Render(st ports.Styler, policy Policy, numberWidth int) string {
	num := strconv.Itoa(c.lineNo)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", c.indent))
	b.WriteString(st.Marker(c.numberTag(policy)))
	b.WriteString(num)
	b.WriteString(st.Marker(ports.Reset))
	b.WriteString(Gap(len(num), numberWidth))
	b.WriteString(c.scanner.Highlight(c.content, st))
	return b.String()
}

func (c Cell) numberTag(policy Policy) ports.StyleTag {
	if policy != Dynamic {
		return ports.LineNumber
	}
	if c.Matches() {
		return ports.LineNumberMatch
	}
	return ports.LineNumberMiss
}

// Gap returns the spaces between a line number of the given digit count and
// the content: one separator plus padding up to width. It never goes below
// the single separator.
func Gap(digits, width int) string {
	pad := width - digits
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", 1+pad)
}
