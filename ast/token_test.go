package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenOuterTextRoundTrip(t *testing.T) {
	source := []byte("  foo\t")
	tok := Token{Kind: Identifier, Offset: 0, LeadingLen: 2, InnerLen: 3, TrailingLen: 1, Line: 1, Column: 3}

	assert.Equal(t, "  ", tok.LeadingWS(source))
	assert.Equal(t, "foo", tok.InnerText(source))
	assert.Equal(t, "\t", tok.TrailingWS(source))
	assert.Equal(t, "  foo\t", tok.OuterText(source))
	assert.Equal(t, 6, tok.OuterLength())
}

func TestTokenHardSpace(t *testing.T) {
	tests := []struct {
		name string
		ws   string
		want bool
	}{
		{"empty", "", false},
		{"single space", " ", false},
		{"two spaces", "  ", true},
		{"tab", "\t", true},
		{"space then tab", " \t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := []byte(tt.ws + "x")
			tok := Token{Kind: Identifier, Offset: 0, LeadingLen: len(tt.ws), InnerLen: 1}
			assert.Equal(t, tt.want, tok.BeginsWithHardSpace(source))
		})
	}
}

func TestTokenSpanExcludesWhitespace(t *testing.T) {
	source := []byte("  foo  ")
	tok := Token{Kind: Identifier, Offset: 0, LeadingLen: 2, InnerLen: 3, TrailingLen: 2}
	span := tok.Span()
	assert.Equal(t, Span{Start: 2, End: 5}, span)
	assert.Equal(t, "foo", span.Text(source))
}

func TestVirtualEOFAfterTrailingWhitespaceIsEmpty(t *testing.T) {
	source := []byte("foo  ")
	eof := Token{Kind: EOF, Offset: 5, LeadingLen: 0, InnerLen: 0, TrailingLen: 0}
	assert.True(t, eof.IsVirtual())
	assert.Equal(t, "", eof.OuterText(source))
}
