// Command ledgerfmt parses, checks, formats, and watches plain-text
// ledger journals. See the teacher's cmd/beancount/main.go, expanded
// from a single kong.Parse-and-print into the Parse/Check/Format/Watch
// subcommand set in the cli package.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/ledgerfmt/ledgerfmt/cli"
)

func main() {
	var commands cli.Commands
	ctx := kong.Parse(&commands,
		kong.Name("ledgerfmt"),
		kong.Description("Parse, check, format, and watch plain-text ledger journals."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&commands.Globals)
	ctx.FatalIfErrorf(err)
}
