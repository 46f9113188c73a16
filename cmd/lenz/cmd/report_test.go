package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/corey/lenz/internal/app"
)

func TestWriteReport_Plain(t *testing.T) {
	problems := []*app.Problem{
		{Path: "a.txt", Kind: app.NotExist, Err: app.ErrNotExist},
		{Path: "dir", Kind: app.NotRegular, Err: app.ErrNotRegular},
		{Path: "b.txt", Kind: app.ReadFailed, Err: errors.New("permission denied")},
	}
	var out bytes.Buffer
	writeReport(&out, problems, false)

	want := "\n" +
		"* Errors Report:\n" +
		"├── [1] File 'a.txt' does not exist.\n" +
		"├── [2] Path 'dir' is not a file.\n" +
		"└── [3] File 'b.txt' could not be read: permission denied.\n"
	assert.Equal(t, want, out.String())
}

func TestWriteReport_SingleEntryUsesLastBranch(t *testing.T) {
	var out bytes.Buffer
	writeReport(&out, []*app.Problem{{Path: "x", Kind: app.NotExist}}, false)
	assert.Contains(t, out.String(), "└── [1] File 'x' does not exist.")
	assert.NotContains(t, out.String(), "├──")
}

func TestWriteReport_Colored(t *testing.T) {
	var out bytes.Buffer
	writeReport(&out, []*app.Problem{{Path: "x", Kind: app.NotExist}}, true)

	assert.Contains(t, out.String(), "\x1b[")
	plain := ansi.Strip(out.String())
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	assert.Equal(t, []string{"", "* Errors Report:", "└── [1] File 'x' does not exist."}, lines)
}

func TestWriteReport_Empty(t *testing.T) {
	var out bytes.Buffer
	writeReport(&out, nil, true)
	assert.Empty(t, out.String())
}

func TestResolveColor(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, resolveColor("always", true, false, &buf))
	assert.True(t, resolveColor("always", false, true, &buf))
	assert.False(t, resolveColor("never", false, false, &buf))
	assert.False(t, resolveColor("auto", false, false, &buf), "a buffer is not a terminal")
	assert.False(t, resolveColor("auto", false, true, &buf))
}
