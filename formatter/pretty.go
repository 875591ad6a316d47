package formatter

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/ledgerfmt/ledgerfmt/ast"
)

const (
	// DefaultCurrencyColumn matches the teacher's bean-format-compatible
	// default alignment column.
	DefaultCurrencyColumn = 52
	// MinimumSpacing is the narrowest gap Pretty ever leaves between an
	// account and its amount, even when CurrencyColumn is too small to
	// fit the line.
	MinimumSpacing = 2
)

// Options configures Pretty.
type Options struct {
	// CurrencyColumn is the target display column (measured with
	// go-runewidth, so wide/combining runes in account names are
	// handled) at which posting amounts should start. Zero selects
	// DefaultCurrencyColumn.
	CurrencyColumn int
}

type edit struct {
	start, end  int
	replacement string
}

// Pretty re-aligns every posting amount in file to a fixed column,
// leaving every other byte of source untouched — comments, directives,
// blank lines, and transaction headers are copied verbatim. Only the
// whitespace run between an account reference and its amount, and the
// amount itself, are rewritten: the amount is re-rendered by
// canonicalAmountText (sign and commodity placement, and the number
// canonicalized through github.com/shopspring/decimal for display only).
func Pretty(file *ast.File, source []byte, opts Options) string {
	column := opts.CurrencyColumn
	if column == 0 {
		column = DefaultCurrencyColumn
	}

	var edits []edit
	for _, child := range file.Children {
		tx, ok := child.(*ast.Transaction)
		if !ok {
			continue
		}
		for _, posting := range tx.Postings {
			if posting.Amount == nil {
				continue
			}
			edits = append(edits, postingEdit(posting, source, column))
		}
	}

	return applyEdits(source, edits)
}

func postingEdit(posting *ast.Posting, source []byte, column int) edit {
	acctSpan := posting.Account.Span()
	amtSpan := posting.Amount.Span()

	lineStart := lineStartBefore(source, acctSpan.Start)
	prefix := string(source[lineStart:acctSpan.End])
	prefixWidth := runewidth.StringWidth(prefix)

	amountText := canonicalAmountText(posting.Amount, source)

	padding := column - prefixWidth
	if padding < MinimumSpacing {
		padding = MinimumSpacing
	}

	return edit{
		start:       acctSpan.End,
		end:         amtSpan.End,
		replacement: strings.Repeat(" ", padding) + amountText,
	}
}

// lineStartBefore returns the offset just past the nearest preceding
// newline, or 0 if offset is on the first line.
func lineStartBefore(source []byte, offset int) int {
	for i := offset - 1; i >= 0; i-- {
		if source[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// canonicalAmountText renders an Amount's commodity + number as Pretty
// wants it displayed: a leading commodity stays glued to the sign
// ("$-12.50"), a trailing commodity gets a single separating space
// ("12.50 USD"). The number itself is reparsed and re-rendered through
// decimal.Decimal — for canonical display only (stripping redundant
// comma grouping, normalizing trailing zeros), never to evaluate or
// validate the amount, matching spec.md's explicit non-goal of
// commodity/value arithmetic.
func canonicalAmountText(amt *ast.Amount, source []byte) string {
	numText := normalizeNumber(amt.NumberText(source))
	sign := ""
	if amt.IsNegative() {
		sign = "-"
	}

	switch {
	case amt.PreCommodity != nil:
		return amt.PreCommodity.InnerText(source) + sign + numText
	case amt.PostCommodity != nil:
		return sign + numText + " " + amt.PostCommodity.InnerText(source)
	default:
		return sign + numText
	}
}

func normalizeNumber(raw string) string {
	clean := strings.ReplaceAll(raw, ",", "")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return raw
	}
	return d.String()
}

func applyEdits(source []byte, edits []edit) string {
	if len(edits) == 0 {
		return string(source)
	}

	var buf bytes.Buffer
	cursor := 0
	for _, e := range edits {
		if e.start < cursor {
			// Overlapping edits shouldn't occur (postings don't
			// share spans), but guard rather than corrupt output.
			continue
		}
		buf.Write(source[cursor:e.start])
		buf.WriteString(e.replacement)
		cursor = e.end
	}
	buf.Write(source[cursor:])
	return buf.String()
}
