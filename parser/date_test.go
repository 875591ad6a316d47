package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerfmt/ledgerfmt/ast"
)

func TestParseDateTwoComponents(t *testing.T) {
	source := []byte("2024/06\n")
	p := NewParser("t.ledger", source)
	d, ok := p.parseDate()
	assert.True(t, ok)
	assert.Equal(t, "2024/06", d.Text(source))
	assert.Equal(t, 0, len(p.diagnostics))
}

func TestParseDateThreeComponents(t *testing.T) {
	source := []byte("2024-06-12\n")
	p := NewParser("t.ledger", source)
	d, ok := p.parseDate()
	assert.True(t, ok)
	assert.Equal(t, "2024-06-12", d.Text(source))
}

func TestParseDateMissingSeparatorFails(t *testing.T) {
	source := []byte("2024 06\n")
	p := NewParser("t.ledger", source)
	_, ok := p.parseDate()
	assert.False(t, ok)
	assert.Equal(t, 1, len(p.diagnostics))
	assert.Equal(t, ast.InvalidDate, p.diagnostics[0].Kind)
}

func TestParseDateMismatchedSecondSeparatorEndsDate(t *testing.T) {
	// A third component is only read after a separator of the same kind
	// as the first.
	source := []byte("2024-06/12\n")
	p := NewParser("t.ledger", source)
	d, ok := p.parseDate()
	// '-' is consumed as the first separator; '/' after the second
	// integer doesn't match skipIf(Hyphen), so the date ends after two
	// components and leaves '/' for whatever comes next.
	assert.True(t, ok)
	assert.Equal(t, "2024-06", d.Text(source))
	assert.Equal(t, ast.Slash, p.peek().Kind)
}
