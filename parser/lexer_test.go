package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerfmt/ledgerfmt/ast"
)

func kinds(source string) []ast.TokenKind {
	l := NewLexer([]byte(source))
	var got []ast.TokenKind
	for {
		tok := l.Next()
		got = append(got, tok.Kind)
		if tok.Kind == ast.EOF {
			return got
		}
	}
}

func TestLexerEmptyInputIsJustEOF(t *testing.T) {
	assert.Equal(t, []ast.TokenKind{ast.EOF}, kinds(""))
}

func TestLexerWhitespaceOnlyInputIsJustEOF(t *testing.T) {
	l := NewLexer([]byte("   \t  "))
	tok := l.Next()
	assert.Equal(t, ast.EOF, tok.Kind)
	assert.True(t, tok.IsVirtual())
	assert.Equal(t, 6, tok.LeadingLen)
}

func TestLexerBasicPosting(t *testing.T) {
	source := "2024-01-15 Groceries\n  Expenses:Food  20.00\n  Assets:Checking\n"
	got := kinds(source)
	want := []ast.TokenKind{
		ast.Number, ast.Hyphen, ast.Number, ast.Hyphen, ast.Number, ast.Identifier, ast.Newline,
		ast.Identifier, ast.Colon, ast.Identifier, ast.Number, ast.Newline,
		ast.Identifier, ast.Colon, ast.Identifier, ast.Newline,
		ast.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLexerTrailingWhitespaceAttachesToPrecedingToken(t *testing.T) {
	l := NewLexer([]byte("foo  bar"))
	first := l.Next()
	assert.Equal(t, ast.Identifier, first.Kind)
	assert.Equal(t, 0, first.LeadingLen)
	assert.Equal(t, 2, first.TrailingLen)

	second := l.Next()
	assert.Equal(t, ast.Identifier, second.Kind)
	assert.Equal(t, 0, second.LeadingLen)
}

func TestLexerHardSpaceDelimitsAccountAndAmount(t *testing.T) {
	// Whitespace always attaches as the trailing run of the token that
	// precedes it, never as the leading run of the token that follows —
	// so the hard space here shows up on Food's trailing side, not on
	// the amount's leading side.
	source := []byte("Expenses:Food  20.00")
	l := NewLexer(source)
	l.Next() // Expenses
	l.Next() // :
	food := l.Next()
	assert.Equal(t, ast.Identifier, food.Kind)
	assert.True(t, food.EndsWithHardSpace(source))

	amount := l.Next()
	assert.Equal(t, ast.Number, amount.Kind)
	assert.Equal(t, 0, amount.LeadingLen)
}

func TestLexerSingleSpaceIsSoftInsidePayee(t *testing.T) {
	source := []byte("Whole Foods")
	l := NewLexer(source)
	first := l.Next()
	assert.False(t, first.EndsWithHardSpace(source))
	assert.Equal(t, 1, first.TrailingLen)
}

func TestLexerLineCommentAtLineStart(t *testing.T) {
	source := "; a note\nfoo"
	got := kinds(source)
	assert.Equal(t, []ast.TokenKind{ast.Comment, ast.Newline, ast.Identifier, ast.EOF}, got)
}

func TestLexerLineAndColumnAdvanceAcrossNewlines(t *testing.T) {
	l := NewLexer([]byte("foo\nbar"))
	first := l.Next()
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)

	l.Next() // newline

	second := l.Next()
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 1, second.Column)
}

func TestLexerOuterTextRoundTripsWholeBuffer(t *testing.T) {
	source := "2024-01-15 Groceries\n  Expenses:Food  20.00\n  Assets:Checking\n"
	l := NewLexer([]byte(source))
	var rebuilt []byte
	for {
		tok := l.Next()
		rebuilt = append(rebuilt, []byte(tok.OuterText([]byte(source)))...)
		if tok.Kind == ast.EOF {
			break
		}
	}
	assert.Equal(t, source, string(rebuilt))
}

func TestLexerDecimalNumberWithCommaGroups(t *testing.T) {
	l := NewLexer([]byte("1,234.56"))
	tok := l.Next()
	assert.Equal(t, ast.Number, tok.Kind)
	assert.Equal(t, 8, tok.InnerLen)
}

func TestLexerPreviousTracksLastConsumedToken(t *testing.T) {
	l := NewLexer([]byte("foo bar"))
	assert.False(t, l.PreviousOK())
	l.Next()
	assert.True(t, l.PreviousOK())
	assert.Equal(t, ast.Identifier, l.Previous().Kind)
}
