// Package ahocorasick compiles a search query into an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library behind ports.Finder so
// the scanner can swap it in for the strings.Index engine.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/lenz/internal/ports"
)

// Matcher finds every non-overlapping occurrence of one needle.
// Build() compiles the automaton once; FindAll() is safe for concurrent use.
type Matcher struct {
	automaton aho.AhoCorasick
	needle    string
}

var _ ports.Finder = (*Matcher)(nil)

// Build compiles the automaton for needle. An empty needle never matches.
func Build(needle string) *Matcher {
	m := &Matcher{needle: needle}
	if needle == "" {
		return m
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA:       true,
		MatchKind: aho.LeftMostFirstMatch,
	})
	m.automaton = builder.Build([]string{needle})
	return m
}

// Compile satisfies ports.FinderFunc.
func Compile(needle string) ports.Finder {
	return Build(needle)
}

// FindAll returns the spans of needle in haystack, left to right, resuming
// after the end of each match. Nil when there is none.
//
// The library iterator restarts one byte after each match start, so a needle
// that overlaps itself ("aa" in "aaa") is reported at every position. Matches
// starting before the end of the previous kept match are skipped.
func (m *Matcher) FindAll(haystack string) []ports.Span {
	if m.needle == "" || len(haystack) < len(m.needle) {
		return nil
	}
	var spans []ports.Span
	next := 0
	iter := m.automaton.Iter(haystack)
	for hit := iter.Next(); hit != nil; hit = iter.Next() {
		if hit.Start() < next {
			continue
		}
		spans = append(spans, ports.Span{Start: hit.Start(), Len: hit.End() - hit.Start()})
		next = hit.End()
	}
	return spans
}
