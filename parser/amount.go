package parser

import "github.com/ledgerfmt/ledgerfmt/ast"

// amountStopKinds is the set of token kinds that end a commodity run:
// a fresh sign, a number, an inline comment, or (implicitly, since
// slurp helpers always stop there too) a newline/eof.
var amountStopKinds = []ast.TokenKind{ast.Hyphen, ast.Number, ast.Comment}

// parseAmount implements spec.md §4.4. It must only be called once the
// caller has confirmed the line still has content after the preceding
// account reference.
func (p *Parser) parseAmount() (*ast.Amount, bool) {
	if !p.expectHardSpace() {
		return nil, false
	}

	var minus *ast.Token
	if tok, ok := p.skipIf(ast.Hyphen); ok {
		minus = &tok
	}

	if p.peekType(ast.Number) {
		number, ok := p.expect(ast.Number)
		if !ok {
			return nil, false
		}
		post := p.slurpOptional(amountStopKinds...)
		return &ast.Amount{Number: number, Minus: minus, PostCommodity: post}, true
	}

	if !p.lineHasNext() {
		p.errorf(ast.UnexpectedEOF, p.peek().Span(), "expected an amount")
		return nil, false
	}

	pre, ok := p.slurpUntil(amountStopKinds...)
	if !ok {
		p.errorf(ast.UnexpectedToken, p.peek().Span(), "expected a commodity or a number")
		return nil, false
	}

	if minus == nil {
		if tok, ok := p.skipIf(ast.Hyphen); ok {
			minus = &tok
		}
	}

	number, ok := p.expect(ast.Number)
	if !ok {
		return nil, false
	}

	return &ast.Amount{Number: number, Minus: minus, PreCommodity: &pre}, true
}

// slurpOptional collects tokens up to (not including) any of stop, or a
// newline/eof, returning nil (not an error) if it collects zero tokens.
func (p *Parser) slurpOptional(stop ...ast.TokenKind) *ast.Group {
	b := ast.NewGroupBuilder()
	for {
		k := p.peek().Kind
		if k == ast.EOF || k == ast.Newline || containsKind(stop, k) {
			break
		}
		b.Add(p.next())
	}
	g, ok := b.Build()
	if !ok {
		return nil
	}
	return &g
}
