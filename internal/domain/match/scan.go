// Package match locates literal occurrences of a query in a line of text and
// renders them with highlight markers.
//
// Matching is exact substring search, left to right, non-overlapping: after
// an occurrence at x the search resumes at x+len(query), so "aa" occurs once
// in "aaa". An empty query never matches. A line with no occurrence yields a
// nil span slice ("absent"); callers use that to short-circuit.
package match

import (
	"strings"

	"github.com/corey/lenz/internal/ports"
)

// Span is one occurrence of the query; see ports.Span.
type Span = ports.Span

// Options controls how a query is matched.
type Options struct {
	// IgnoreCase folds both the query and the text with Fold before matching.
	// Spans still index the original text.
	IgnoreCase bool
}

// Scanner is a query compiled once and applied to many lines.
// A Scanner is immutable and safe to reuse across lines and files.
type Scanner struct {
	query  string
	opts   Options
	finder ports.Finder // nil when query is empty
}

// NewScanner compiles query with compile. A nil compile uses IndexFinder.
func NewScanner(query string, opts Options, compile ports.FinderFunc) *Scanner {
	s := &Scanner{query: query, opts: opts}
	if query == "" {
		return s
	}
	if compile == nil {
		compile = IndexFinder
	}
	needle := query
	if opts.IgnoreCase {
		needle = Fold(query)
	}
	s.finder = compile(needle)
	return s
}

// Query returns the query as given, before any folding.
func (s *Scanner) Query() string { return s.query }

// Options returns the options the scanner was compiled with.
func (s *Scanner) Options() Options { return s.opts }

// Scan returns the occurrences of the query in text, or nil when there are none.
func (s *Scanner) Scan(text string) []Span {
	if s.finder == nil || len(text) < len(s.query) {
		return nil
	}
	haystack := text
	if s.opts.IgnoreCase {
		haystack = Fold(text)
	}
	return disjoint(s.finder.FindAll(haystack), len(text))
}

// disjoint drops spans that are empty, out of bounds, or start before the
// end of the previous kept span. An engine that reports overlapping or
// unordered hits degrades to the leftmost non-overlapping subset.
func disjoint(spans []Span, size int) []Span {
	kept := spans[:0:0]
	next := 0
	for _, sp := range spans {
		if sp.Len <= 0 || sp.Start < next || sp.End() > size {
			continue
		}
		kept = append(kept, sp)
		next = sp.End()
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// Count returns the number of occurrences in text and whether there was any.
func (s *Scanner) Count(text string) (int, bool) {
	spans := s.Scan(text)
	return len(spans), spans != nil
}

// Matches reports whether text contains the query at least once.
func (s *Scanner) Matches(text string) bool {
	return s.Scan(text) != nil
}

// Scan is the one-shot form of Scanner.Scan.
func Scan(query, text string, opts Options) []Span {
	return NewScanner(query, opts, nil).Scan(text)
}

// Count is the one-shot form of Scanner.Count.
func Count(query, text string, opts Options) (int, bool) {
	return NewScanner(query, opts, nil).Count(text)
}

// indexFinder is the strings.Index based engine.
type indexFinder struct {
	needle string
}

// IndexFinder compiles needle into a Finder backed by strings.Index.
func IndexFinder(needle string) ports.Finder {
	return indexFinder{needle: needle}
}

func (f indexFinder) FindAll(haystack string) []Span {
	n := len(f.needle)
	if n == 0 {
		return nil
	}
	var spans []Span
	for off := 0; off+n <= len(haystack); {
		i := strings.Index(haystack[off:], f.needle)
		if i < 0 {
			break
		}
		spans = append(spans, Span{Start: off + i, Len: n})
		off += i + n
	}
	return spans
}
