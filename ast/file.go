package ast

// File is the top-level driver result: every successfully parsed child,
// in source order. A malformed item is simply absent from this list —
// its diagnostic lives in ParserResult.Diagnostics instead (spec.md §7).
type File struct {
	Children []Node
}

func (f *File) Span() Span {
	if len(f.Children) == 0 {
		return Span{}
	}
	return f.Children[0].Span().Combine(f.Children[len(f.Children)-1].Span())
}
