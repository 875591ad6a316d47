package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ledgerfmt/ledgerfmt/diagnostics"
	"github.com/ledgerfmt/ledgerfmt/parser"
	"github.com/ledgerfmt/ledgerfmt/telemetry"
)

// CheckCmd parses a file and reports every diagnostic collected along
// the way, exiting non-zero if any were found — the teacher's
// cli/check.go plays the analogous role, but against ledger-balancing
// validation errors; here the core parser's own diagnostic list is the
// thing being surfaced, since cross-reference validation is out of
// scope for this grammar.
type CheckCmd struct {
	File FileOrStdin `arg:"" optional:"" help:"Journal file (use '-' or omit for stdin)."`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()
	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)
	}

	timer := telemetry.FromContext(runCtx).Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
	defer func() {
		timer.End()
		if collector != nil {
			fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}
	}()

	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("read %s: %w", cmd.File.Filename, err)
	}

	result := parser.Parse(cmd.File.Filename, source)

	if len(result.Diagnostics) == 0 {
		printSuccess(ctx.Stdout, fmt.Sprintf("%s: no diagnostics", cmd.File.Filename))
		return nil
	}

	formatter := &diagnostics.TextFormatter{Color: !globals.NoColor && isTerminal()}
	fmt.Fprint(ctx.Stderr, formatter.FormatAll(cmd.File.Filename, source, result.Diagnostics))
	fmt.Fprintln(ctx.Stderr)
	printError(ctx.Stderr, fmt.Sprintf("%d diagnostic(s) found", len(result.Diagnostics)))

	os.Exit(1)
	return nil
}
