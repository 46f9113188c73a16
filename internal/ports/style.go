package ports

// StyleTag names one slot of the output palette. The core only asks for
// markers by tag and concatenates them; it never interprets them.
type StyleTag int

const (
	// Reset ends any style started by another tag.
	Reset StyleTag = iota
	// Highlight wraps each occurrence of the query.
	Highlight
	// LineNumber colors line numbers under the static policy.
	LineNumber
	// LineNumberMatch colors the number of a matching line under the dynamic policy.
	LineNumberMatch
	// LineNumberMiss colors the number of a non-matching line under the dynamic policy.
	LineNumberMiss
	// Heading starts a file summary line.
	Heading
	// Path styles the file path inside a summary line.
	Path
	// Count styles the occurrence total inside a summary line.
	Count
)

var styleTagNames = [...]string{
	Reset:           "reset",
	Highlight:       "highlight",
	LineNumber:      "line_number",
	LineNumberMatch: "line_number_match",
	LineNumberMiss:  "line_number_miss",
	Heading:         "heading",
	Path:            "path",
	Count:           "count",
}

func (t StyleTag) String() string {
	if t < 0 || int(t) >= len(styleTagNames) {
		return "unknown"
	}
	return styleTagNames[t]
}

// Styler renders a style tag into the marker string written to the output.
// A plain Styler returns "" for every tag.
type Styler interface {
	Marker(tag StyleTag) string
}

// StylerFunc adapts a function to the Styler interface.
type StylerFunc func(tag StyleTag) string

// Marker calls f(tag).
func (f StylerFunc) Marker(tag StyleTag) string { return f(tag) }

// ParseStyleTag returns the tag whose String form is name.
func ParseStyleTag(name string) (StyleTag, bool) {
	for i, n := range styleTagNames {
		if n == name {
			return StyleTag(i), true
		}
	}
	return 0, false
}
