package match

import (
	"strings"

	"github.com/corey/lenz/internal/ports"
)

// Highlight returns text with every occurrence of the query wrapped between
// the Highlight and Reset markers of st. Occurrences keep their original
// casing. Text without an occurrence is returned unchanged.
//
// Removing the markers from the result always gives back text byte for byte.
func (s *Scanner) Highlight(text string, st ports.Styler) string {
	spans := s.Scan(text)
	if spans == nil {
		return text
	}

	begin := st.Marker(ports.Highlight)
	reset := st.Marker(ports.Reset)

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(begin)+len(reset)))
	cursor := 0
	for _, sp := range spans {
		b.WriteString(text[cursor:sp.Start])
		b.WriteString(begin)
		b.WriteString(text[sp.Start:sp.End()])
		b.WriteString(reset)
		cursor = sp.End()
	}
	b.WriteString(text[cursor:])
	return b.String()
}

// Highlight is the one-shot form of Scanner.Highlight.
func Highlight(query, text string, opts Options, st ports.Styler) string {
	return NewScanner(query, opts, nil).Highlight(text, st)
}
