package ast

import "fmt"

// DiagnosticKind is the closed set of parse-error kinds the grammar can
// report (spec.md §7).
type DiagnosticKind uint8

const (
	UnexpectedToken DiagnosticKind = iota
	UnexpectedEOF
	InvalidDate
	InvalidAccount
	InvalidInteger
	LeadingSpace
)

var diagnosticKindNames = [...]string{
	UnexpectedToken: "UNEXPECTED_TOKEN",
	UnexpectedEOF:   "UNEXPECTED_EOF",
	InvalidDate:     "INVALID_DATE",
	InvalidAccount:  "INVALID_ACCOUNT",
	InvalidInteger:  "INVALID_INTEGER",
	LeadingSpace:    "LEADING_SPACE",
}

func (k DiagnosticKind) String() string {
	if int(k) < len(diagnosticKindNames) {
		return diagnosticKindNames[k]
	}
	return "UNKNOWN"
}

// Diagnostic is a single recoverable parse error: a kind tag, a
// human-readable message, and the span it refers to.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Span    Span
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// NewDiagnostic constructs a Diagnostic with a formatted message.
func NewDiagnostic(kind DiagnosticKind, span Span, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}
