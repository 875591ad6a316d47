package ast

// Posting is a single leg of a transaction: an account reference, an
// optional amount, and any comments attached to it.
type Posting struct {
	Account  *AccountRef
	Amount   *Amount
	Comments []*CommentNode
}

func (p *Posting) Span() Span {
	span := p.Account.Span()
	if p.Amount != nil {
		span = span.Combine(p.Amount.Span())
	}
	for _, c := range p.Comments {
		span = span.Combine(c.Span())
	}
	return span
}

// HasAmount reports whether this posting states an amount explicitly
// (spec.md §8 "Hard-space delimiter": a posting with an amount must have
// one separated from its account by a hard space, which the parser
// enforces, not this accessor).
func (p *Posting) HasAmount() bool { return p.Amount != nil }

// Transaction is a dated entry with optional flag, code, payee, and a
// list of postings.
type Transaction struct {
	Date     *DateNode
	Aux      *AuxDate
	Cleared  *Token // '*', mutually exclusive with Pending
	Pending  *Token // '!', mutually exclusive with Cleared
	Code     *Code
	Payee    *Payee
	Comments []*CommentNode
	Postings []*Posting
}

func (t *Transaction) Span() Span {
	span := t.Date.Span()
	if t.Aux != nil {
		span = span.Combine(t.Aux.Span())
	}
	if t.Cleared != nil {
		span = span.Combine(t.Cleared.Span())
	}
	if t.Pending != nil {
		span = span.Combine(t.Pending.Span())
	}
	if t.Code != nil {
		span = span.Combine(t.Code.Span())
	}
	if t.Payee != nil {
		span = span.Combine(t.Payee.Span())
	}
	for _, c := range t.Comments {
		span = span.Combine(c.Span())
	}
	for _, p := range t.Postings {
		span = span.Combine(p.Span())
	}
	return span
}

// IsCleared reports whether the '*' flag was present.
func (t *Transaction) IsCleared() bool { return t.Cleared != nil }

// IsPending reports whether the '!' flag was present.
func (t *Transaction) IsPending() bool { return t.Pending != nil }
