package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ledgerfmt/ledgerfmt/diagnostics"
	"github.com/ledgerfmt/ledgerfmt/formatter"
	"github.com/ledgerfmt/ledgerfmt/parser"
)

// FormatCmd re-aligns posting amounts into a fixed currency column
// (formatter.Pretty), matching the teacher's "format a file to align
// numbers and currencies" FormatCmd (cli/format.go), minus the
// ledger-balancing concerns that package also carries.
type FormatCmd struct {
	File           FileOrStdin `arg:"" optional:"" help:"Journal file (use '-' or omit for stdin)."`
	CurrencyColumn int         `help:"Column posting amounts should start at." default:"52"`
	Write          bool        `help:"Write the result back to File instead of printing it." short:"w"`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("read %s: %w", cmd.File.Filename, err)
	}

	result := parser.Parse(cmd.File.Filename, source)
	if len(result.Diagnostics) > 0 {
		df := &diagnostics.TextFormatter{Color: !globals.NoColor && isTerminal()}
		fmt.Fprint(ctx.Stderr, df.FormatAll(cmd.File.Filename, source, result.Diagnostics))
		fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "refusing to format a file with diagnostics")
		os.Exit(1)
	}

	column := cmd.CurrencyColumn
	if column == 0 {
		column = formatter.DefaultCurrencyColumn
	}
	out := formatter.Pretty(result.File, source, formatter.Options{CurrencyColumn: column})

	if !cmd.Write || cmd.File.Filename == "<stdin>" {
		fmt.Fprint(ctx.Stdout, out)
		return nil
	}

	if out == string(source) {
		printInfof(ctx.Stdout, "%s already formatted", cmd.File.Filename)
		return nil
	}

	ok, err := promptYesNo(fmt.Sprintf("Overwrite %s with formatted output?", cmd.File.Filename))
	if err != nil {
		return err
	}
	if !ok {
		printInfof(ctx.Stdout, "not written")
		return nil
	}

	if err := os.WriteFile(cmd.File.Filename, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cmd.File.Filename, err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("%s formatted", cmd.File.Filename))
	return nil
}
