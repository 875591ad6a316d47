package parser

import "github.com/ledgerfmt/ledgerfmt/ast"

// parseAccountRef implements spec.md §4.5: a bare run of tokens, or a
// virtual-posting form surrounded by matching '(' ')' (unbalanced) or
// '[' ']' (balanced).
func (p *Parser) parseAccountRef() (*ast.AccountRef, bool) {
	if open, ok := p.skipIf(ast.LParen, ast.LBracket); ok {
		vtype := ast.Virtual
		closeKind := ast.RParen
		if open.Kind == ast.LBracket {
			vtype = ast.BalancedVirtual
			closeKind = ast.RBracket
		}

		contents, ok := p.slurpUntil(closeKind)
		if !ok {
			p.errorf(ast.InvalidAccount, p.peek().Span(), "expected an account name inside brackets")
			return nil, false
		}

		closeTok, ok := p.expect(closeKind)
		if !ok {
			return nil, false
		}

		name := contents.InnerText(p.source)
		p.accounts.Add(name, contents.Span())

		return &ast.AccountRef{Open: &open, Contents: contents, Close: &closeTok, VirtualType: vtype}, true
	}

	contents, ok := p.slurpUntilHardSpace()
	if !ok {
		p.errorf(ast.InvalidAccount, p.peek().Span(), "expected an account name")
		return nil, false
	}

	name := contents.InnerText(p.source)
	p.accounts.Add(name, contents.Span())

	return &ast.AccountRef{Contents: contents, VirtualType: ast.Plain}, true
}
