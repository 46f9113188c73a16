package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/lenz/internal/ports"
)

func TestNew_DefaultMarkers(t *testing.T) {
	p, err := New(nil)
	require.NoError(t, err)
	tests := []struct {
		tag  ports.StyleTag
		want string
	}{
		{ports.Reset, "\x1b[0m"},
		{ports.Highlight, "\x1b[41m"},
		{ports.LineNumber, "\x1b[32m"},
		{ports.LineNumberMatch, "\x1b[31m"},
		{ports.LineNumberMiss, "\x1b[32m"},
		{ports.Heading, "\x1b[1m"},
		{ports.Path, "\x1b[3;37m"},
		{ports.Count, "\x1b[32m"},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Marker(tt.tag))
		})
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"bold"}, "\x1b[1m"},
		{[]string{"underline", "blink"}, "\x1b[4;5m"},
		{[]string{"yellow", "bg-blue"}, "\x1b[33;44m"},
		{[]string{"default", "bg-default"}, "\x1b[39;49m"},
		{[]string{" Bold "}, "\x1b[1m"},
		{[]string{"black", "bg-white"}, "\x1b[30;47m"},
	}
	for _, tt := range tests {
		got, err := Sequence(tt.names...)
		require.NoError(t, err, "%v", tt.names)
		assert.Equal(t, tt.want, got, "%v", tt.names)
	}
}

func TestSequence_UnknownStyle(t *testing.T) {
	_, err := Sequence("bold", "chartreuse")
	assert.ErrorContains(t, err, "chartreuse")

	_, err = Sequence("bg-")
	assert.Error(t, err)
}

func TestNew_OverridesAndDisables(t *testing.T) {
	p, err := New(map[string][]string{
		"highlight": {"reverse"},
		"heading":   {},
	})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[7m", p.Marker(ports.Highlight))
	assert.Equal(t, "", p.Marker(ports.Heading))
	assert.Equal(t, "\x1b[32m", p.Marker(ports.Count), "unlisted tags keep defaults")
}

func TestNew_RejectsUnknownTag(t *testing.T) {
	_, err := New(map[string][]string{"gutter": {"red"}})
	assert.ErrorContains(t, err, "gutter")

	_, err = New(map[string][]string{"reset": {"red"}})
	assert.Error(t, err, "reset is fixed")
}

func TestNew_RejectsUnknownStyle(t *testing.T) {
	_, err := New(map[string][]string{"count": {"sparkly"}})
	assert.ErrorContains(t, err, "count")
}

func TestPlain(t *testing.T) {
	for tag := ports.Reset; tag <= ports.Count; tag++ {
		assert.Empty(t, Plain{}.Marker(tag))
	}
}
