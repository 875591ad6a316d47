package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/ledgerfmt/ledgerfmt/parser"
)

// ParseCmd parses a file and dumps its concrete syntax tree, the same
// role the teacher's cmd/beancount/main.go plays directly in main
// (repr.Println(b)) — lifted here into a proper subcommand so it sits
// alongside Check/Format/Watch instead of being the program's only
// behavior.
type ParseCmd struct {
	File FileOrStdin `arg:"" optional:"" help:"Journal file (use '-' or omit for stdin)."`
}

func (cmd *ParseCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return err
	}

	result := parser.Parse(cmd.File.Filename, source)
	repr.Println(result.File)

	if len(result.Diagnostics) > 0 {
		fmt.Fprintln(ctx.Stderr)
		printInfof(ctx.Stderr, "%d diagnostic(s) — run `ledgerfmt check` for details", len(result.Diagnostics))
	}
	return nil
}
