package ast

// Node is implemented by every tree element that carries a span.
type Node interface {
	Span() Span
}

// DateNode holds the raw token run of a date: 2 or 3 integers separated
// by '/' or '-'. Component validation (range, leap years) is explicitly
// out of scope (spec.md §1, §4.3) — only the lexical shape is captured.
type DateNode struct {
	Raw Group
}

func (d *DateNode) Span() Span { return d.Raw.Span() }

// Text returns the date's inner text, e.g. "2024-06-12".
func (d *DateNode) Text(source []byte) string { return d.Raw.InnerText(source) }

// AuxDate is the optional secondary date following '=' on a transaction
// header.
type AuxDate struct {
	Equal Token
	Date  *DateNode
}

func (a *AuxDate) Span() Span {
	return a.Equal.Span().Combine(a.Date.Span())
}

// Code is a parenthesized run of tokens on a transaction header, e.g.
// "(INV-204)".
type Code struct {
	Open     Token
	Contents Group
	Close    Token
}

func (c *Code) Span() Span {
	return c.Open.Span().Combine(c.Close.Span())
}

// Text returns the code's contents, excluding the parentheses.
func (c *Code) Text(source []byte) string { return c.Contents.InnerText(source) }

// Amount is a numeric token optionally preceded by a minus sign and
// optionally flanked by a pre- or post-commodity symbol run. Exactly one
// of PreCommodity/PostCommodity is populated when a commodity is present;
// which one records where, in the source, the commodity symbol sat
// relative to the number.
type Amount struct {
	Number        Token
	Minus         *Token
	PreCommodity  *Group
	PostCommodity *Group
}

func (a *Amount) Span() Span {
	span := a.Number.Span()
	if a.Minus != nil {
		span = span.Combine(a.Minus.Span())
	}
	if a.PreCommodity != nil {
		span = span.Combine(a.PreCommodity.Span())
	}
	if a.PostCommodity != nil {
		span = span.Combine(a.PostCommodity.Span())
	}
	return span
}

// IsNegative reports whether a leading minus sign was present.
func (a *Amount) IsNegative() bool { return a.Minus != nil }

// NumberText returns the raw numeric text, e.g. "50.23".
func (a *Amount) NumberText(source []byte) string { return a.Number.InnerText(source) }

// VirtualType classifies how an AccountRef was delimited.
type VirtualType uint8

const (
	// Plain is a bare account reference with no surrounding brackets.
	Plain VirtualType = iota
	// Virtual is an unbalanced virtual posting, delimited by ( ).
	Virtual
	// BalancedVirtual is a balanced virtual posting, delimited by [ ].
	BalancedVirtual
)

// AccountRef is either a bare run of tokens (an account name) or a
// parenthesized/bracketed virtual-posting form.
type AccountRef struct {
	Open        *Token // nil for the bare form
	Contents    Group
	Close       *Token // nil for the bare form
	VirtualType VirtualType
}

func (a *AccountRef) Span() Span {
	if a.Open != nil && a.Close != nil {
		return a.Open.Span().Combine(a.Close.Span())
	}
	return a.Contents.Span()
}

// Name returns the account name text, excluding any surrounding
// parentheses or brackets.
func (a *AccountRef) Name(source []byte) string { return a.Contents.InnerText(source) }

// Payee is the (possibly multi-run) payee name on a transaction header.
// Hard-space-separated runs on the same header line are concatenated into
// one Group, preserving the interior whitespace between them.
type Payee struct {
	Raw Group
}

func (p *Payee) Span() Span { return p.Raw.Span() }

// Text returns the payee's inner text.
func (p *Payee) Text(source []byte) string { return p.Raw.InnerText(source) }

// CommentNode is a single comment token together with its decoded character
// and body. Unlike whitespace, comments are first-class tree nodes (not
// trivia): the grammar attaches them to transactions and postings as
// children (spec.md §9 "Trivia attachment").
type CommentNode struct {
	Source Token
	// Tags is a stub for a future tag-extraction pass (":tag:" / "key:
	// value" syntax inside comment bodies). It is always empty in this
	// implementation; spec.md §9 leaves the semantics as an open
	// question and asks for a deterministic empty result rather than a
	// guess.
	Tags map[string]string
}

func (c *CommentNode) Span() Span { return c.Source.Span() }

// CommentChar returns the first byte of the comment token — one of
// ';', '#', '%', '*', '|'.
func (c *CommentNode) CommentChar(source []byte) byte {
	text := c.Source.InnerBytes(source)
	if len(text) == 0 {
		return 0
	}
	return text[0]
}

// Body returns the comment text after the leading comment character.
func (c *CommentNode) Body(source []byte) string {
	text := c.Source.InnerText(source)
	if len(text) == 0 {
		return ""
	}
	return text[1:]
}
