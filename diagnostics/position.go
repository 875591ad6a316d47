package diagnostics

import "github.com/ledgerfmt/ledgerfmt/ast"

// position is a 1-indexed line/column pair, computed from a byte offset
// rather than stored on the diagnostic itself — Token already carries
// Line/Column for the tokens that produced it, but a Diagnostic's Span
// may combine several tokens, so formatters recompute it from source.
type position struct {
	Line   int
	Column int
}

// linesOf splits source into its lines, keeping the trailing newline out
// of each entry, for indexed access while rendering context lines.
func linesOf(source []byte) []string {
	var lines []string
	start := 0
	for i, b := range source {
		if b == '\n' {
			lines = append(lines, string(source[start:i]))
			start = i + 1
		}
	}
	lines = append(lines, string(source[start:]))
	return lines
}

// positionAt walks source up to offset counting newlines, returning the
// 1-indexed line/column of that byte.
func positionAt(source []byte, offset int) position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	line := 1
	col := 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return position{Line: line, Column: col}
}

func spanStart(source []byte, span ast.Span) position {
	return positionAt(source, span.Start)
}
