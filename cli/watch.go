package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ledgerfmt/ledgerfmt/diagnostics"
	"github.com/ledgerfmt/ledgerfmt/service"
)

// WatchCmd re-checks a file every time it changes on disk, standing in
// for the teacher's web-editor WebCmd's live-reload behavior without
// the HTTP server itself — spec.md §6 only asks for "construct a new
// parser on each edit", which service.Watcher already does.
type WatchCmd struct {
	File string `arg:"" help:"Journal file to watch."`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := service.NewWatcher(cmd.File)
	go func() {
		if err := w.Start(runCtx); err != nil {
			printError(ctx.Stderr, err.Error())
		}
	}()

	printInfof(ctx.Stdout, "watching %s (ctrl-c to stop)", cmd.File)
	df := &diagnostics.TextFormatter{Color: !globals.NoColor && isTerminal()}

	for {
		select {
		case <-runCtx.Done():
			return nil

		case result := <-w.Results:
			source, err := os.ReadFile(cmd.File)
			if err != nil {
				printError(ctx.Stderr, err.Error())
				continue
			}
			if len(result.Diagnostics) == 0 {
				printSuccess(ctx.Stdout, fmt.Sprintf("%s: no diagnostics", cmd.File))
				continue
			}
			fmt.Fprint(ctx.Stderr, df.FormatAll(cmd.File, source, result.Diagnostics))

		case err := <-w.Errors():
			printError(ctx.Stderr, err.Error())
		}
	}
}
