package match

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/lenz/internal/adapters/ahocorasick"
	"github.com/corey/lenz/internal/ports"
)

// Property-based checks over a small alphabet so that random queries hit
// often, including case variants and multi-byte letters.

var alphabet = []string{"a", "A", "b", "B", "ö", "Ö", " ", "."}

// engines are the Finder implementations a Scanner can be compiled with.
var engines = []struct {
	name    string
	compile ports.FinderFunc
}{
	{"index", IndexFinder},
	{"aho-corasick", ahocorasick.Compile},
}

func randomString(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

func TestProperty_HighlightRoundTrip(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			for trial := 0; trial < 2000; trial++ {
				q := randomString(rng, 1, 3)
				text := randomString(rng, 0, 40)
				for _, opts := range []Options{{}, {IgnoreCase: true}} {
					got := NewScanner(q, opts, eng.compile).Highlight(text, sgrStyler{})
					require.Equal(t, text, ansi.Strip(got),
						"trial %d: q=%q text=%q ignoreCase=%v", trial, q, text, opts.IgnoreCase)
				}
			}
		})
	}
}

func TestProperty_AbsenceLaw(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			for trial := 0; trial < 2000; trial++ {
				q := randomString(rng, 1, 3)
				text := randomString(rng, 0, 30)

				cs := NewScanner(q, Options{}, eng.compile)
				ci := NewScanner(q, Options{IgnoreCase: true}, eng.compile)
				assert.Equal(t, !strings.Contains(text, q), cs.Scan(text) == nil,
					"case-sensitive q=%q text=%q", q, text)
				assert.Equal(t, !strings.Contains(Fold(text), Fold(q)), ci.Scan(text) == nil,
					"ignore-case q=%q text=%q", q, text)
			}
		})
	}
}

func TestProperty_SpansOrderedDisjointInBounds(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1337))
			for trial := 0; trial < 2000; trial++ {
				q := randomString(rng, 1, 3)
				text := randomString(rng, 0, 40)
				for _, opts := range []Options{{}, {IgnoreCase: true}} {
					spans := NewScanner(q, opts, eng.compile).Scan(text)
					for i, sp := range spans {
						require.Equal(t, len(q), sp.Len)
						require.GreaterOrEqual(t, sp.Start, 0)
						require.LessOrEqual(t, sp.End(), len(text))
						if i > 0 {
							require.LessOrEqual(t, spans[i-1].End(), sp.Start,
								"overlap at %d: q=%q text=%q", i, q, text)
						}
						if opts.IgnoreCase {
							require.Equal(t, Fold(q), Fold(text[sp.Start:sp.End()]))
						} else {
							require.Equal(t, q, text[sp.Start:sp.End()])
						}
					}
				}
			}
		})
	}
}

func TestProperty_IgnoreCaseCountsAtLeastAsMany(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 2000; trial++ {
		q := randomString(rng, 1, 3)
		text := randomString(rng, 0, 40)
		cs, _ := Count(q, text, Options{})
		ci, _ := Count(q, text, Options{IgnoreCase: true})
		assert.GreaterOrEqual(t, ci, cs, "q=%q text=%q", q, text)
	}
}

func TestProperty_CountMatchesStringsCount(t *testing.T) {
	// strings.Count also counts non-overlapping instances left to right.
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(2024))
			for trial := 0; trial < 2000; trial++ {
				q := randomString(rng, 1, 3)
				text := randomString(rng, 0, 40)
				n, ok := NewScanner(q, Options{}, eng.compile).Count(text)
				assert.Equal(t, strings.Count(text, q), n, "q=%q text=%q", q, text)
				assert.Equal(t, n > 0, ok)
			}
		})
	}
}

func TestProperty_RepeatedRunsCountLikeStringsCount(t *testing.T) {
	// Self-overlapping queries over runs of one symbol.
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			for qn := 1; qn <= 4; qn++ {
				for tn := 0; tn <= 12; tn++ {
					q := strings.Repeat("a", qn)
					text := "x" + strings.Repeat("a", tn) + "x"
					n, _ := NewScanner(q, Options{}, eng.compile).Count(text)
					require.Equal(t, strings.Count(text, q), n, "q=%q text=%q", q, text)
				}
			}
		})
	}
}
