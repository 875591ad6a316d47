package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerfmt/ledgerfmt/ast"
)

func TestParseEmptyInput(t *testing.T) {
	res := ParseString("t.ledger", "")
	assert.Equal(t, 0, len(res.File.Children))
	assert.Equal(t, 0, len(res.Diagnostics))
}

func TestParseWhitespaceOnlyInput(t *testing.T) {
	res := ParseString("t.ledger", "   \n\t  ")
	assert.Equal(t, 0, len(res.File.Children))
	assert.Equal(t, 0, len(res.Diagnostics))
}

func TestParseUnterminatedCommentBlock(t *testing.T) {
	source := "comment\nnever closes\n"
	res := ParseString("t.ledger", source)

	assert.Equal(t, 0, len(res.File.Children))
	assert.Equal(t, 1, len(res.Diagnostics))
	assert.Equal(t, ast.UnexpectedEOF, res.Diagnostics[0].Kind)
}

func TestParseUnterminatedCommentBlockStillYieldsSiblings(t *testing.T) {
	source := "2024-01-01 Before\n  Assets:A  $1\n  Assets:B\ncomment\nnever closes\n"
	res := ParseString("t.ledger", source)

	assert.Equal(t, 1, len(res.File.Children))
	_, ok := res.File.Children[0].(*ast.Transaction)
	assert.True(t, ok)
	assert.Equal(t, 1, len(res.Diagnostics))
	assert.Equal(t, ast.UnexpectedEOF, res.Diagnostics[0].Kind)
}

func TestParseStraySymbolRecovers(t *testing.T) {
	source := "@@@\n2024-01-01 Ok\n  Assets:A  $1\n  Assets:B\n"
	res := ParseString("t.ledger", source)

	assert.Equal(t, 1, len(res.File.Children))
	assert.True(t, len(res.Diagnostics) >= 1)
	assert.Equal(t, ast.UnexpectedToken, res.Diagnostics[0].Kind)
}

func TestParseStandardDirectiveWithSubdirectives(t *testing.T) {
	source := "account Assets:Checking\n  note Opened in 2020\n  alias checking\n"
	res := ParseString("t.ledger", source)

	assert.Equal(t, 0, len(res.Diagnostics))
	assert.Equal(t, 1, len(res.File.Children))

	d, ok := res.File.Children[0].(*ast.Directive)
	assert.True(t, ok)
	assert.Equal(t, "account", d.Name.InnerText([]byte(source)))
	assert.Equal(t, "Assets:Checking", d.Argument.InnerText([]byte(source)))
	assert.Equal(t, 2, len(d.Subdirectives))
	assert.Equal(t, "note", d.Subdirectives[0].Key.InnerText([]byte(source)))
	assert.Equal(t, "Opened in 2020", d.Subdirectives[0].Value.InnerText([]byte(source)))
}

func TestParseApplyAndEnd(t *testing.T) {
	source := "apply tag trip-2024\n2024-01-01 X\n  Assets:A  $1\n  Assets:B\nend apply tag\n"
	res := ParseString("t.ledger", source)

	assert.Equal(t, 0, len(res.Diagnostics))
	assert.Equal(t, 3, len(res.File.Children))

	apply, ok := res.File.Children[0].(*ast.Apply)
	assert.True(t, ok)
	assert.Equal(t, "tag", apply.Name.InnerText([]byte(source)))
	assert.Equal(t, "trip-2024", apply.Args.InnerText([]byte(source)))

	end, ok := res.File.Children[2].(*ast.End)
	assert.True(t, ok)
	assert.Equal(t, "tag", end.Name.InnerText([]byte(source)))
}

func TestSymbolTableFirstDeclarationWins(t *testing.T) {
	source := "2024-01-01 A\n  Assets:Checking  $1\n  Assets:Other\n2024-01-02 B\n  Assets:Checking  $2\n  Assets:Other\n"
	res := ParseString("t.ledger", source)

	assert.Equal(t, 0, len(res.Diagnostics))
	span, ok := res.Accounts.Get("Assets:Checking")
	assert.True(t, ok)
	// First declaration is on the first transaction's posting line, well
	// before the second transaction's date even begins.
	assert.True(t, span.Start < strings.Index(source, "2024-01-02"))
}
