package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestGroupBuilderRefusesEmpty(t *testing.T) {
	b := NewGroupBuilder()
	_, ok := b.Build()
	assert.False(t, ok)
}

func TestGroupBuilderAccumulates(t *testing.T) {
	// "Expenses:Food" as two identifier tokens joined by a colon token,
	// with no whitespace between any of them (as the lexer guarantees).
	source := []byte("Expenses:Food")
	tokExpenses := Token{Kind: Identifier, Offset: 0, InnerLen: 8}
	tokColon := Token{Kind: Colon, Offset: 8, InnerLen: 1}
	tokFood := Token{Kind: Identifier, Offset: 9, InnerLen: 4}

	b := NewGroupBuilder().Add(tokExpenses).Add(tokColon).Add(tokFood)
	g, ok := b.Build()
	assert.True(t, ok)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, "Expenses:Food", g.InnerText(source))
	assert.Equal(t, Span{Start: 0, End: 13}, g.Span())
}

func TestGroupInnerTextTrimsOnlyOuterWhitespace(t *testing.T) {
	source := []byte("a  b")
	a := Token{Kind: Identifier, Offset: 0, InnerLen: 1, TrailingLen: 2}
	b := Token{Kind: Identifier, Offset: 3, InnerLen: 1}

	g := NewGroupUnchecked([]Token{a, b})
	assert.Equal(t, "a  b", g.InnerText(source))
}
