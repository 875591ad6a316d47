package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSymbolTableFirstWriterWins(t *testing.T) {
	st := NewSymbolTable()
	st.Add("Expenses:Food", Span{Start: 0, End: 13})
	st.Add("Expenses:Food", Span{Start: 100, End: 113})

	span, ok := st.Get("Expenses:Food")
	assert.True(t, ok)
	assert.Equal(t, Span{Start: 0, End: 13}, span)
	assert.Equal(t, 1, st.Len())
}

func TestSymbolTableHasAndNames(t *testing.T) {
	st := NewSymbolTable()
	assert.False(t, st.Has("Assets:Checking"))

	st.Add("Assets:Checking", Span{Start: 0, End: 1})
	st.Add("Expenses:Food", Span{Start: 2, End: 3})

	assert.True(t, st.Has("Assets:Checking"))
	assert.Equal(t, []string{"Assets:Checking", "Expenses:Food"}, st.Names())
}
