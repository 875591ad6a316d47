package parser

import "github.com/ledgerfmt/ledgerfmt/ast"

// parseDate implements spec.md §4.3: integer, a '/' or '-' separator,
// integer, optionally the same separator again followed by a required
// third integer. Only the lexical shape is checked — component range
// and leap-year validity are out of scope.
func (p *Parser) parseDate() (*ast.DateNode, bool) {
	b := ast.NewGroupBuilder()

	first, ok := p.expectInteger()
	if !ok {
		return nil, false
	}
	b.Add(first)

	sep, ok := p.skipIf(ast.Slash, ast.Hyphen)
	if !ok {
		p.errorf(ast.InvalidDate, p.peek().Span(), "expected '/' or '-' in date")
		return nil, false
	}
	b.Add(sep)

	second, ok := p.expectInteger()
	if !ok {
		return nil, false
	}
	b.Add(second)

	if next, ok := p.skipIf(sep.Kind); ok {
		b.Add(next)
		third, ok := p.expectInteger()
		if !ok {
			return nil, false
		}
		b.Add(third)
	}

	group, ok := b.Build()
	if !ok {
		// Unreachable: at least one integer was always added above.
		panic("parseDate: empty group despite required leading integer")
	}
	return &ast.DateNode{Raw: group}, true
}
