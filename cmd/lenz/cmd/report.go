package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/muesli/termenv"

	"github.com/corey/lenz/internal/app"
)

var red = lipgloss.Color("1")

// newRenderer binds lipgloss to w. color forces the ANSI profile on or off.
func newRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// reportStyles are the errors report styles.
type reportStyles struct {
	header lipgloss.Style
	branch lipgloss.Style
	path   lipgloss.Style
}

func newReportStyles(r *lipgloss.Renderer) reportStyles {
	return reportStyles{
		header: r.NewStyle().Bold(true).Foreground(red),
		branch: r.NewStyle().Foreground(red).PaddingRight(1),
		path:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("7")),
	}
}

// renderReport draws the errors report: a header followed by one numbered
// branch per problem.
func renderReport(r *lipgloss.Renderer, problems []*app.Problem) string {
	st := newReportStyles(r)
	quote := func(path string) string {
		return st.path.Render("'" + path + "'")
	}

	t := tree.Root(st.header.Render("* Errors Report:")).
		Enumerator(tree.DefaultEnumerator).
		EnumeratorStyle(st.branch)
	for i, p := range problems {
		num := st.header.UnsetBold().Render(fmt.Sprintf("[%d]", i+1))
		t.Child(num + " " + p.Message(quote))
	}
	return t.String()
}

// writeReport prints the errors report after a blank line. Nothing is
// printed when there are no problems.
func writeReport(w io.Writer, problems []*app.Problem, color bool) {
	if len(problems) == 0 {
		return
	}
	out := renderReport(newRenderer(w, color), problems)
	fmt.Fprintln(w)
	for _, line := range strings.Split(out, "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
