package diagnostics

import (
	"encoding/json"

	"github.com/ledgerfmt/ledgerfmt/ast"
)

// DiagnosticJSON is the wire shape for one diagnostic, the same split
// the teacher's ErrorJSON/PositionJSON pair makes in
// errors/formatter.go.
type DiagnosticJSON struct {
	Kind     string       `json:"kind"`
	Message  string       `json:"message"`
	Position PositionJSON `json:"position"`
}

// PositionJSON is a 1-indexed file position.
type PositionJSON struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// JSONFormatter renders diagnostics as JSON for a non-human consumer —
// spec.md §6's editor language-service.
type JSONFormatter struct{}

// NewJSONFormatter constructs a JSONFormatter.
func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

// ToSlice converts diags to their JSON-ready representation without
// marshaling, so callers embedding it in a larger payload can compose it
// further.
func (f *JSONFormatter) ToSlice(filename string, source []byte, diags []ast.Diagnostic) []DiagnosticJSON {
	result := make([]DiagnosticJSON, 0, len(diags))
	for _, d := range diags {
		pos := spanStart(source, d.Span)
		result = append(result, DiagnosticJSON{
			Kind:    d.Kind.String(),
			Message: d.Message,
			Position: PositionJSON{
				Filename: filename,
				Line:     pos.Line,
				Column:   pos.Column,
			},
		})
	}
	return result
}

// FormatAll renders every diagnostic as an indented JSON array.
func (f *JSONFormatter) FormatAll(filename string, source []byte, diags []ast.Diagnostic) string {
	data, err := json.MarshalIndent(f.ToSlice(filename, source, diags), "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
