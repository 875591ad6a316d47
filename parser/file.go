package parser

import "github.com/ledgerfmt/ledgerfmt/ast"

// ParserResult is everything a completed Parse call hands back: the
// parsed tree, every diagnostic collected along the way, and the two
// symbol tables populated while walking it (spec.md §6).
type ParserResult struct {
	File        *ast.File
	Diagnostics []ast.Diagnostic
	Accounts    *ast.SymbolTable
	Payees      *ast.SymbolTable
}

// Parse runs the file-level Ready/Panic driver loop of spec.md §4.8 to
// completion over source and returns the accumulated result. filename
// is carried through only for diagnostic display.
func Parse(filename string, source []byte) ParserResult {
	p := NewParser(filename, source)
	return p.parseFile()
}

// ParseString is a convenience wrapper over Parse for string sources.
func ParseString(filename, source string) ParserResult {
	return Parse(filename, []byte(source))
}

// parseFile is the Ready/Panic state machine of spec.md §4.8.
func (p *Parser) parseFile() ParserResult {
	var children []ast.Node

	for p.peek().Kind != ast.EOF {
		// A newline at top level is a blank (or whitespace-only) line.
		if p.peek().Kind == ast.Newline {
			p.next()
			continue
		}

		if p.nextIsIndented() {
			p.synchronize(ast.LeadingSpace, p.peek().Span(), "unexpected indentation at start of a top-level item")
			continue
		}

		var (
			child ast.Node
			ok    bool
		)

		switch p.peek().Kind {
		case ast.Number:
			child, ok = p.parseTransaction()
		case ast.Comment:
			child, ok = p.parseComment()
		case ast.Identifier:
			child, ok = p.parseDirective()
		default:
			bad := p.next()
			p.errorf(ast.UnexpectedToken, bad.Span(), "unexpected %s at top level", bad.Kind)
			ok = false
		}

		if !ok {
			p.panicAdvance()
			continue
		}
		children = append(children, child)
	}

	return ParserResult{
		File:        &ast.File{Children: children},
		Diagnostics: p.diagnostics,
		Accounts:    p.accounts,
		Payees:      p.payees,
	}
}
