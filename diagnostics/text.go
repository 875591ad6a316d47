// Package diagnostics renders ast.Diagnostic values for the two
// consumers spec.md §6 names: a human reading a terminal (TextFormatter)
// and a machine such as an editor language-service (JSONFormatter). The
// core parser package never does this itself — it only accumulates the
// diagnostic list — matching the teacher's own separation between
// domain logic and the presentation layer in errors/formatter.go.
package diagnostics

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ledgerfmt/ledgerfmt/ast"
)

var (
	filenameStyle = lipgloss.NewStyle().Bold(true)
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	gutterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	caretStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// TextFormatter renders diagnostics in the familiar
// "file:line:col: KIND: message" shape, followed by the offending
// source line and a caret under the span's first column, colored with
// lipgloss when the formatter's Color option is enabled.
type TextFormatter struct {
	Color bool
}

// NewTextFormatter constructs a TextFormatter with Color set to true.
// The cli package builds its own TextFormatter values instead, with
// Color off when NoColor is set or stdin is not a terminal.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{Color: true}
}

// Format renders one diagnostic against source, whose bytes the
// diagnostic's Span indexes into.
func (f *TextFormatter) Format(filename string, source []byte, d ast.Diagnostic) string {
	var buf bytes.Buffer
	pos := spanStart(source, d.Span)

	header := fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
	kind := d.Kind.String()
	if f.Color {
		header = filenameStyle.Render(header)
		kind = kindStyle.Render(kind)
	}
	fmt.Fprintf(&buf, "%s: %s: %s\n", header, kind, d.Message)

	lines := linesOf(source)
	if pos.Line-1 < len(lines) {
		line := lines[pos.Line-1]
		gutter := fmt.Sprintf("%5d | ", pos.Line)
		if f.Color {
			gutter = gutterStyle.Render(gutter)
		}
		fmt.Fprintf(&buf, "%s%s\n", gutter, line)

		width := runewidth.StringWidth(line[:min(pos.Column-1, len(line))])
		caret := strings.Repeat(" ", 7+width) + "^"
		if f.Color {
			caret = strings.Repeat(" ", 7+width) + caretStyle.Render("^")
		}
		buf.WriteString(caret)
		buf.WriteByte('\n')
	}

	return buf.String()
}

// FormatAll renders every diagnostic in order, separated by a blank
// line, matching the teacher's TextFormatter.FormatAll in
// errors/formatter.go.
func (f *TextFormatter) FormatAll(filename string, source []byte, diags []ast.Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var buf bytes.Buffer
	for i, d := range diags {
		buf.WriteString(f.Format(filename, source, d))
		if i < len(diags)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
