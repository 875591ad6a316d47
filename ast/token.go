package ast

import "fmt"

// TokenKind is the closed set of externally observable token kinds.
// The lexer also produces an internal whitespace kind, but that kind
// never survives to become a Token returned by Lexer.Peek/Next — it is
// absorbed into the LeadingLen/TrailingLen of adjacent tokens instead.
type TokenKind uint8

const (
	Newline TokenKind = iota
	Comment
	String
	Number
	Equal
	Tilde
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Hyphen
	Slash
	Star
	Bang
	Colon
	At
	Identifier
	Symbol
	EOF
)

var tokenKindNames = [...]string{
	Newline:    "newline",
	Comment:    "comment",
	String:     "string",
	Number:     "number",
	Equal:      "equal",
	Tilde:      "tilde",
	LParen:     "lparen",
	RParen:     "rparen",
	LBrace:     "lbrace",
	RBrace:     "rbrace",
	LBracket:   "lbracket",
	RBracket:   "rbracket",
	Hyphen:     "hyphen",
	Slash:      "slash",
	Star:       "star",
	Bang:       "bang",
	Colon:      "colon",
	At:         "at",
	Identifier: "identifier",
	Symbol:     "symbol",
	EOF:        "eof",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is a typed span with leading and trailing whitespace attached.
//
// Invariants (spec.md §3 "Token"):
//   - Offset points at the first byte of the token's leading whitespace.
//   - The on-buffer bytes at [Offset, Offset+OuterLength()) are exactly
//     LeadingWS ++ InnerText ++ TrailingWS.
//   - A token never contains the internal whitespace kind; a run of
//     whitespace between two non-whitespace tokens is always attached as
//     the trailing whitespace of the earlier token (see Lexer.materialize).
//
// Token stores byte-offset bounds rather than copied strings so that
// constructing the tree allocates no new string data beyond what callers
// ask for via InnerText/OuterText — the source buffer is the only backing
// store, following the teacher parser's zero-copy Token design.
type Token struct {
	Kind        TokenKind
	Offset      int // start of leading whitespace
	LeadingLen  int
	InnerLen    int
	TrailingLen int
	Line        int // 1-indexed line of the first inner byte
	Column      int // 1-indexed column of the first inner byte
}

// innerStart is the offset of the first byte of InnerText.
func (t Token) innerStart() int { return t.Offset + t.LeadingLen }

// Span is the span of the token's inner text, excluding whitespace. Using
// the inner span (not the outer one) for node spans keeps the "later
// sibling's span.start >= earlier sibling's span.end" invariant of
// spec.md §8 true even though whitespace physically separates them.
func (t Token) Span() Span {
	start := t.innerStart()
	return Span{Start: start, End: start + t.InnerLen}
}

// OuterLength is the number of bytes this token occupies on the buffer,
// including its leading and trailing whitespace.
func (t Token) OuterLength() int {
	return t.LeadingLen + t.InnerLen + t.TrailingLen
}

// InnerText returns the token's significant text (no whitespace).
func (t Token) InnerText(source []byte) string {
	start := t.innerStart()
	return sliceString(source, start, start+t.InnerLen)
}

// InnerBytes is the zero-copy view of InnerText.
func (t Token) InnerBytes(source []byte) []byte {
	start := t.innerStart()
	return sliceBytes(source, start, start+t.InnerLen)
}

// LeadingWS returns the whitespace run immediately before the token.
func (t Token) LeadingWS(source []byte) string {
	return sliceString(source, t.Offset, t.Offset+t.LeadingLen)
}

// TrailingWS returns the whitespace run immediately after the token.
func (t Token) TrailingWS(source []byte) string {
	start := t.innerStart() + t.InnerLen
	return sliceString(source, start, start+t.TrailingLen)
}

// OuterText returns leading whitespace + inner text + trailing whitespace,
// i.e. the exact bytes this token occupies on the buffer.
func (t Token) OuterText(source []byte) string {
	return sliceString(source, t.Offset, t.Offset+t.OuterLength())
}

// IsVirtual reports whether this token was synthesized rather than
// scanned (the end-of-input marker).
func (t Token) IsVirtual() bool {
	return t.Kind == EOF
}

// BeginsWithSpace reports whether any whitespace precedes the token.
func (t Token) BeginsWithSpace() bool { return t.LeadingLen > 0 }

// EndsWithSpace reports whether any whitespace follows the token.
func (t Token) EndsWithSpace() bool { return t.TrailingLen > 0 }

// BeginsWithHardSpace reports whether the whitespace preceding the token
// is "hard" (a tab, or two or more consecutive spaces).
func (t Token) BeginsWithHardSpace(source []byte) bool {
	return isHardSpace(sliceBytes(source, t.Offset, t.Offset+t.LeadingLen))
}

// EndsWithHardSpace reports whether the whitespace following the token is
// "hard" (a tab, or two or more consecutive spaces).
func (t Token) EndsWithHardSpace(source []byte) bool {
	start := t.innerStart() + t.InnerLen
	return isHardSpace(sliceBytes(source, start, start+t.TrailingLen))
}

// isHardSpace implements the grammar-level hard/soft space distinction:
// a whitespace run is "hard" iff it contains a tab or two-or-more spaces.
func isHardSpace(ws []byte) bool {
	spaceRun := 0
	for _, b := range ws {
		switch b {
		case '\t':
			return true
		case ' ':
			spaceRun++
			if spaceRun >= 2 {
				return true
			}
		default:
			spaceRun = 0
		}
	}
	return false
}

func sliceBytes(source []byte, start, end int) []byte {
	if start < 0 || end < start || end > len(source) {
		return nil
	}
	return source[start:end]
}

func sliceString(source []byte, start, end int) string {
	b := sliceBytes(source, start, end)
	if b == nil {
		return ""
	}
	return string(b)
}
