// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain logic depends only on these interfaces, never on concrete
// implementations; cmd/lenz wires the adapters in.
package ports

// Span is one occurrence of a query inside a line: a byte offset into the
// original text and the byte length of the occurrence. Start+Len never
// exceeds the length of the text the span was produced for.
type Span struct {
	Start int
	Len   int
}

// End returns the exclusive end offset of the span.
func (s Span) End() int { return s.Start + s.Len }

// Finder locates occurrences of one compiled needle.
// Implementations scan left to right and never report overlapping spans:
// after a hit at x the search resumes at x+len(needle). Content is matched
// as-is (the caller folds case before compiling and before calling FindAll).
type Finder interface {
	// FindAll returns every non-overlapping occurrence in ascending order,
	// or nil when there is none.
	FindAll(haystack string) []Span
}

// FinderFunc compiles a needle into a Finder. The needle is never empty.
// Compilation happens once per display operation, so it may be expensive
// relative to a single FindAll call.
type FinderFunc func(needle string) Finder
