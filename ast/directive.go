package ast

// SubDirective is one indented "key [value]" line nested under a
// standard Directive.
type SubDirective struct {
	Key   Token
	Value *Group
}

func (s *SubDirective) Span() Span {
	span := s.Key.Span()
	if s.Value != nil {
		span = span.Combine(s.Value.Span())
	}
	return span
}

// Directive is a top-level "name [argument]" statement with zero or more
// indented sub-directives. This covers every identifier-led directive
// that is not one of the special forms below (alias, apply/end,
// comment-block).
type Directive struct {
	Name          Token
	Argument      *Group
	Subdirectives []*SubDirective
}

func (d *Directive) Span() Span {
	span := d.Name.Span()
	if d.Argument != nil {
		span = span.Combine(d.Argument.Span())
	}
	for _, sd := range d.Subdirectives {
		span = span.Combine(sd.Span())
	}
	return span
}

// Apply opens an "apply NAME [args]" block.
type Apply struct {
	ApplyTok Token
	Name     Token
	Args     *Group
}

func (a *Apply) Span() Span {
	span := a.ApplyTok.Span().Combine(a.Name.Span())
	if a.Args != nil {
		span = span.Combine(a.Args.Span())
	}
	return span
}

// End closes either a plain directive block ("end NAME") or an apply
// block ("end apply NAME").
type End struct {
	EndTok Token
	Apply  *Token // present for "end apply NAME"
	Name   Token
}

func (e *End) Span() Span {
	span := e.EndTok.Span().Combine(e.Name.Span())
	if e.Apply != nil {
		span = span.Combine(e.Apply.Span())
	}
	return span
}

// Alias binds a name to a value: "alias NAME = VALUE". The value may
// itself contain '=' characters (e.g. "alias Foo=Bar=Baz"), since both
// sides are slurped rather than tokenized specially.
type Alias struct {
	AliasTok Token
	Name     Group
	Equal    Token
	Value    Group
}

func (a *Alias) Span() Span {
	return a.AliasTok.Span().Combine(a.Value.Span())
}

// CommentDirective is a multi-line "comment ... end comment" (or "test
// ... end test") block. The body is everything lexically between the
// opening line's newline and the "end <name>" sequence.
type CommentDirective struct {
	StartName Token
	Body      Span
	EndTok    Token
	EndName   Token
}

func (c *CommentDirective) Span() Span {
	return c.StartName.Span().Combine(c.EndName.Span())
}

// BodyText returns the verbatim comment-block body.
func (c *CommentDirective) BodyText(source []byte) string { return c.Body.Text(source) }
