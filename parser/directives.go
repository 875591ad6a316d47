package parser

import "github.com/ledgerfmt/ledgerfmt/ast"

// parseDirective implements the dispatch of spec.md §4.7: the caller
// has already confirmed peek is an identifier at the start of a
// top-level line.
func (p *Parser) parseDirective() (ast.Node, bool) {
	switch p.peek().InnerText(p.source) {
	case "alias":
		return p.parseAlias()
	case "apply":
		return p.parseApply()
	case "end":
		return p.parseEnd()
	case "comment", "test":
		return p.parseCommentDirective()
	default:
		return p.parseStandardDirective()
	}
}

// parseAlias implements "alias NAME = VALUE", where VALUE may itself
// contain '=' characters since both sides are slurped rather than
// tokenized specially.
func (p *Parser) parseAlias() (*ast.Alias, bool) {
	aliasTok, ok := p.expectIdentifier("alias")
	if !ok {
		return nil, false
	}

	name, ok := p.slurpUntil(ast.Equal)
	if !ok {
		if p.peekType(ast.Equal) {
			p.errorf(ast.UnexpectedToken, p.peek().Span(), "expected an alias name before '='")
		} else {
			p.errorf(ast.UnexpectedEOF, p.peek().Span(), "expected 'alias NAME = VALUE'")
		}
		return nil, false
	}

	eq, ok := p.expect(ast.Equal)
	if !ok {
		return nil, false
	}

	value, ok := p.slurp()
	if !ok {
		p.errorf(ast.UnexpectedEOF, p.peek().Span(), "expected a value after 'alias NAME ='")
		return nil, false
	}

	if _, ok := p.expectEndOfLine(); !ok {
		return nil, false
	}

	return &ast.Alias{AliasTok: aliasTok, Name: name, Equal: eq, Value: value}, true
}

// parseApply implements "apply NAME [args]".
func (p *Parser) parseApply() (*ast.Apply, bool) {
	applyTok, ok := p.expectIdentifier("apply")
	if !ok {
		return nil, false
	}

	name, ok := p.expect(ast.Identifier)
	if !ok {
		return nil, false
	}

	var args *ast.Group
	if p.lineHasNext() {
		if g, ok := p.slurp(); ok {
			args = &g
		}
	}

	if _, ok := p.expectEndOfLine(); !ok {
		return nil, false
	}

	return &ast.Apply{ApplyTok: applyTok, Name: name, Args: args}, true
}

// parseEnd implements "end NAME" or "end apply NAME".
func (p *Parser) parseEnd() (*ast.End, bool) {
	endTok, ok := p.expectIdentifier("end")
	if !ok {
		return nil, false
	}

	var applyTok *ast.Token
	if p.peekType(ast.Identifier) && p.peek().InnerText(p.source) == "apply" {
		tok := p.next()
		applyTok = &tok
	}

	name, ok := p.expect(ast.Identifier)
	if !ok {
		return nil, false
	}

	if _, ok := p.expectEndOfLine(); !ok {
		return nil, false
	}

	return &ast.End{EndTok: endTok, Apply: applyTok, Name: name}, true
}

// parseCommentDirective implements the "comment"/"test" multi-line
// block: everything lexically between the opening line's newline and
// the matching "end NAME" sequence becomes the body, with the opening
// newline's trailing whitespace (the indentation of the body's first
// line, which our whitespace-attachment design bundles onto that
// newline rather than the token after it) stitched back on so the body
// round-trips exactly.
func (p *Parser) parseCommentDirective() (*ast.CommentDirective, bool) {
	startTok, ok := p.expect(ast.Identifier)
	if !ok {
		return nil, false
	}
	name := startTok.InnerText(p.source)

	nlTok, ok := p.expectEndOfLine()
	if !ok {
		return nil, false
	}

	matched, found := p.untilSequence("end", name)
	if !found {
		p.errorf(ast.UnexpectedEOF, p.peek().Span(), "unterminated '%s' block, expected 'end %s'", name, name)
		return nil, false
	}

	body := ast.Span{Start: nlTok.Span().End, End: matched[0].Offset}

	if _, ok := p.expectEndOfLine(); !ok {
		return nil, false
	}

	return &ast.CommentDirective{StartName: startTok, Body: body, EndTok: matched[0], EndName: matched[1]}, true
}

// parseStandardDirective implements every identifier-led directive that
// is not one of the special forms above: name, optional argument slurp,
// end-of-line, then zero or more indented sub-directives.
func (p *Parser) parseStandardDirective() (*ast.Directive, bool) {
	nameTok, ok := p.expect(ast.Identifier)
	if !ok {
		return nil, false
	}

	var argument *ast.Group
	if p.lineHasNext() {
		if g, ok := p.slurp(); ok {
			argument = &g
		}
	}

	if _, ok := p.expectEndOfLine(); !ok {
		return nil, false
	}

	var subs []*ast.SubDirective
	ok = p.whileIndented(func() bool {
		sub, ok := p.parseSubDirective()
		if !ok {
			return false
		}
		subs = append(subs, sub)
		return true
	})
	if !ok {
		return nil, false
	}

	return &ast.Directive{Name: nameTok, Argument: argument, Subdirectives: subs}, true
}

// parseSubDirective implements one indented "KEY [VALUE]" line nested
// under a standard directive. Its end-of-line is required by the
// enclosing whileIndented loop, not here.
func (p *Parser) parseSubDirective() (*ast.SubDirective, bool) {
	key, ok := p.expect(ast.Identifier)
	if !ok {
		return nil, false
	}

	var value *ast.Group
	if p.lineHasNext() {
		if g, ok := p.slurp(); ok {
			value = &g
		}
	}

	return &ast.SubDirective{Key: key, Value: value}, true
}
