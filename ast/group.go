package ast

// Group is a non-empty ordered sequence of tokens carrying a combined
// span. Groups are how the grammar expresses "a run of tokens" wherever
// the spec needs one — account names, payees, slurped directive
// arguments, comment bodies.
//
// A Group is always non-empty: the zero value is meaningless and must
// never be handed to callers. Use GroupBuilder to accumulate tokens and
// obtain an (ast.Group, bool) pair, or NewGroupUnchecked when the caller
// can prove non-emptiness some other way (see its doc comment).
type Group struct {
	tokens []Token
}

// Tokens returns the group's tokens in order. Callers must not mutate the
// returned slice.
func (g Group) Tokens() []Token { return g.tokens }

// Len returns the number of tokens in the group.
func (g Group) Len() int { return len(g.tokens) }

// Span is the combined span of every token in the group.
func (g Group) Span() Span {
	if len(g.tokens) == 0 {
		return Span{}
	}
	return Span{Start: g.tokens[0].Span().Start, End: g.tokens[len(g.tokens)-1].Span().End}
}

// InnerText returns the outer text of the group with the group's own
// leading and trailing whitespace trimmed, but interior whitespace (the
// gaps between the group's own tokens) preserved exactly as written.
func (g Group) InnerText(source []byte) string {
	if len(g.tokens) == 0 {
		return ""
	}
	first, last := g.tokens[0], g.tokens[len(g.tokens)-1]
	start := first.innerStart()
	end := last.innerStart() + last.InnerLen
	return sliceString(source, start, end)
}

// OuterText returns the group's full on-buffer extent, including the
// leading whitespace of its first token and the trailing whitespace of
// its last.
func (g Group) OuterText(source []byte) string {
	if len(g.tokens) == 0 {
		return ""
	}
	first, last := g.tokens[0], g.tokens[len(g.tokens)-1]
	end := last.innerStart() + last.InnerLen + last.TrailingLen
	return sliceString(source, first.Offset, end)
}

// NewGroupUnchecked builds a Group from a token slice known by the caller
// to be non-empty. This is the one constructor that bypasses the
// non-empty invariant; it exists for callers that can prove
// non-emptiness structurally without going through a builder. The
// grammar productions in package parser (Date included) use GroupBuilder.
// Callers MUST justify non-emptiness at the call site — passing an empty
// slice here produces a Group whose Span and InnerText are meaningless
// zero values, not a panic, so misuse fails silently rather than loudly.
func NewGroupUnchecked(tokens []Token) Group {
	return Group{tokens: tokens}
}

// GroupBuilder accumulates tokens into a Group, refusing to produce an
// empty one.
type GroupBuilder struct {
	tokens []Token
}

// NewGroupBuilder returns an empty builder.
func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{}
}

// Add appends a token and returns the builder for chaining.
func (b *GroupBuilder) Add(t Token) *GroupBuilder {
	b.tokens = append(b.tokens, t)
	return b
}

// Len reports how many tokens have been added so far.
func (b *GroupBuilder) Len() int { return len(b.tokens) }

// Build returns the accumulated Group and true, or a zero Group and false
// if no tokens were ever added.
func (b *GroupBuilder) Build() (Group, bool) {
	if len(b.tokens) == 0 {
		return Group{}, false
	}
	return Group{tokens: b.tokens}, true
}
