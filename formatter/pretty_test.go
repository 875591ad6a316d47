package formatter

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/ledgerfmt/ledgerfmt/parser"
)

func TestRoundTripReturnsSourceVerbatim(t *testing.T) {
	source := "2024-06-12 * Grocery Store  ; note\n  Expenses:Food  $50.23\n  Assets:Checking\n"
	assert.Equal(t, source, RoundTrip([]byte(source)))
}

func TestPrettyAlignsAmountToColumn(t *testing.T) {
	source := "2024-06-12 X\n  Expenses:Food  $50.23\n  Assets:Checking\n"
	res := parser.ParseString("t.ledger", source)
	assert.Equal(t, 0, len(res.Diagnostics))

	out := Pretty(res.File, []byte(source), Options{CurrencyColumn: 30})
	lines := strings.Split(out, "\n")
	// "  Expenses:Food" is 15 columns wide; the amount must start at
	// column 30 (0-indexed), i.e. after 15 padding spaces.
	assert.True(t, strings.HasPrefix(lines[1], "  Expenses:Food"))
	amountIdx := strings.Index(lines[1], "$")
	assert.Equal(t, 30, amountIdx)
}

func TestPrettyLeavesNonPostingLinesUntouched(t *testing.T) {
	source := "; a header comment\n2024-06-12 X  ; inline\n  Expenses:Food  $50.23\n  Assets:Checking\n"
	res := parser.ParseString("t.ledger", source)
	assert.Equal(t, 0, len(res.Diagnostics))

	out := Pretty(res.File, []byte(source), Options{CurrencyColumn: 40})
	assert.True(t, strings.HasPrefix(out, "; a header comment\n2024-06-12 X  ; inline\n"))
}

func TestPrettyNormalizesCommaGroupedNumber(t *testing.T) {
	source := "2024-06-12 X\n  Expenses:Food  $1,234.50\n  Assets:Checking\n"
	res := parser.ParseString("t.ledger", source)
	assert.Equal(t, 0, len(res.Diagnostics))

	out := Pretty(res.File, []byte(source), Options{CurrencyColumn: 20})
	assert.True(t, strings.Contains(out, "$1234.5"))
}

func TestPrettyRespectsMinimumSpacingForLongAccounts(t *testing.T) {
	source := "2024-06-12 X\n  Expenses:ThisAccountNameIsVeryLong  $1\n  Assets:Checking\n"
	res := parser.ParseString("t.ledger", source)
	assert.Equal(t, 0, len(res.Diagnostics))

	out := Pretty(res.File, []byte(source), Options{CurrencyColumn: 10})
	lines := strings.Split(out, "\n")
	idx := strings.LastIndex(lines[1], "ThisAccountNameIsVeryLong")
	amountIdx := strings.Index(lines[1], "$")
	assert.Equal(t, MinimumSpacing, amountIdx-(idx+len("ThisAccountNameIsVeryLong")))
}
