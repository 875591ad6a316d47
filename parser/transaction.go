package parser

import "github.com/ledgerfmt/ledgerfmt/ast"

// parseFlag consumes an optional cleared ('*') or pending ('!') flag.
// Encountering the other flag immediately afterwards is rejected
// outright (spec.md §4.6 "Flag disambiguation") rather than accepted in
// either order as earlier revisions of this grammar did.
func (p *Parser) parseFlag() (*ast.Token, bool) {
	tok, ok := p.skipIf(ast.Star, ast.Bang)
	if !ok {
		return nil, true
	}
	if p.peekType(ast.Star, ast.Bang) {
		second := p.next()
		p.errorf(ast.UnexpectedToken, second.Span(), "a transaction cannot have both a cleared and a pending flag")
		return &tok, false
	}
	return &tok, true
}

// parseCommentToken parses a bare comment token without its trailing
// end-of-line, for use where the surrounding production (a header line,
// a posting line) still needs to require end-of-line itself afterwards.
func (p *Parser) parseCommentToken() (*ast.CommentNode, bool) {
	tok, ok := p.expect(ast.Comment)
	if !ok {
		return nil, false
	}
	return &ast.CommentNode{Source: tok, Tags: map[string]string{}}, true
}

// parseComment is the standalone Comment production of spec.md §4.6: a
// comment token followed by end-of-line. Used wherever a comment is a
// complete statement in its own right (a top-level item, or a whole
// indented line inside a transaction's postings).
func (p *Parser) parseComment() (*ast.CommentNode, bool) {
	c, ok := p.parseCommentToken()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectEndOfLine(); !ok {
		return nil, false
	}
	return c, true
}

// parsePayee implements spec.md §4.6 "Payee": slurp a hard-space-less
// run, then keep concatenating further runs while the line still has
// content and the next token is not a comment. Registers the
// concatenated text in the payee symbol table.
func (p *Parser) parsePayee() (*ast.Payee, bool) {
	group, ok := p.slurpUntilHardSpace()
	if !ok {
		return nil, false
	}

	for p.lineHasNext() && p.peek().Kind != ast.Comment {
		next, ok := p.slurpUntilHardSpace()
		if !ok {
			break
		}
		group = joinGroups(group, next)
	}

	p.payees.Add(group.InnerText(p.source), group.Span())
	return &ast.Payee{Raw: group}, true
}

func joinGroups(a, b ast.Group) ast.Group {
	gb := ast.NewGroupBuilder()
	for _, t := range a.Tokens() {
		gb.Add(t)
	}
	for _, t := range b.Tokens() {
		gb.Add(t)
	}
	g, _ := gb.Build() // a is always non-empty, so the join is too
	return g
}

// parsePosting implements spec.md §4.6 "Posting": an AccountRef,
// followed by an optional Amount if the line still has content, and an
// optional trailing same-line comment.
func (p *Parser) parsePosting() (*ast.Posting, bool) {
	account, ok := p.parseAccountRef()
	if !ok {
		return nil, false
	}
	posting := &ast.Posting{Account: account}

	if p.lineHasNext() && p.peek().Kind != ast.Comment {
		amount, ok := p.parseAmount()
		if !ok {
			return nil, false
		}
		posting.Amount = amount
	}

	if p.peek().Kind == ast.Comment {
		comment, ok := p.parseCommentToken()
		if !ok {
			return nil, false
		}
		posting.Comments = append(posting.Comments, comment)
	}

	return posting, true
}

// parsePostings implements the postings loop of spec.md §4.6/§4.8: while
// the next line is indented, a whole-line comment attaches to the most
// recent posting (or the transaction itself, before any posting
// exists); otherwise a Posting is parsed and the loop itself requires
// the terminating end-of-line.
func (p *Parser) parsePostings(tx *ast.Transaction) bool {
	for p.nextIsIndented() {
		if p.peek().Kind == ast.Comment {
			comment, ok := p.parseComment()
			if !ok {
				return false
			}
			if n := len(tx.Postings); n > 0 {
				tx.Postings[n-1].Comments = append(tx.Postings[n-1].Comments, comment)
			} else {
				tx.Comments = append(tx.Comments, comment)
			}
			continue
		}

		posting, ok := p.parsePosting()
		if !ok {
			return false
		}
		tx.Postings = append(tx.Postings, posting)

		if _, ok := p.expectEndOfLine(); !ok {
			return false
		}
	}
	return true
}

// parseTransaction implements spec.md §4.6 "Transaction".
func (p *Parser) parseTransaction() (*ast.Transaction, bool) {
	date, ok := p.parseDate()
	if !ok {
		return nil, false
	}

	var aux *ast.AuxDate
	if eq, ok := p.skipIf(ast.Equal); ok {
		d, ok := p.parseDate()
		if !ok {
			return nil, false
		}
		aux = &ast.AuxDate{Equal: eq, Date: d}
	}

	flagTok, ok := p.parseFlag()
	if !ok {
		return nil, false
	}
	var cleared, pending *ast.Token
	if flagTok != nil {
		if flagTok.Kind == ast.Star {
			cleared = flagTok
		} else {
			pending = flagTok
		}
	}

	var code *ast.Code
	if open, ok := p.skipIf(ast.LParen); ok {
		contents, ok := p.slurpUntil(ast.RParen)
		if !ok {
			p.errorf(ast.UnexpectedToken, p.peek().Span(), "expected code contents before ')'")
			return nil, false
		}
		closeTok, ok := p.expect(ast.RParen)
		if !ok {
			return nil, false
		}
		code = &ast.Code{Open: open, Contents: contents, Close: closeTok}
	}

	var payee *ast.Payee
	if p.lineHasNext() && p.peek().Kind != ast.Comment {
		pp, ok := p.parsePayee()
		if !ok {
			return nil, false
		}
		payee = pp
	}

	tx := &ast.Transaction{Date: date, Aux: aux, Cleared: cleared, Pending: pending, Code: code, Payee: payee}

	if p.peek().Kind == ast.Comment {
		c, ok := p.parseCommentToken()
		if !ok {
			return nil, false
		}
		tx.Comments = append(tx.Comments, c)
	}

	if _, ok := p.expectEndOfLine(); !ok {
		return nil, false
	}

	if !p.parsePostings(tx) {
		return nil, false
	}

	return tx, true
}
