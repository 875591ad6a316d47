package diagnostics

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/ledgerfmt/ledgerfmt/ast"
	"github.com/ledgerfmt/ledgerfmt/parser"
)

func TestTextFormatterRendersKindAndMessage(t *testing.T) {
	source := "  2024-06-12 Oops\n"
	res := parser.ParseString("t.ledger", source)
	assert.Equal(t, 1, len(res.Diagnostics))

	f := &TextFormatter{Color: false}
	out := f.Format("t.ledger", []byte(source), res.Diagnostics[0])

	assert.True(t, strings.Contains(out, "t.ledger:1:"))
	assert.True(t, strings.Contains(out, ast.LeadingSpace.String()))
	assert.True(t, strings.Contains(out, "^"))
}

func TestTextFormatterFormatAllEmpty(t *testing.T) {
	f := NewTextFormatter()
	assert.Equal(t, "", f.FormatAll("t.ledger", nil, nil))
}

func TestTextFormatterFormatAllSeparatesEntries(t *testing.T) {
	source := "@@@\n"
	res := parser.ParseString("t.ledger", source)
	assert.True(t, len(res.Diagnostics) >= 1)

	f := &TextFormatter{Color: false}
	out := f.FormatAll("t.ledger", []byte(source), res.Diagnostics)
	assert.True(t, len(out) > 0)
}
