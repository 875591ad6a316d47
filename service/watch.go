// Package service is a minimal stand-in for the "Language service"
// collaborator spec.md §6 describes: on every file change it
// constructs a brand-new parser.Parser over the file's current bytes
// and republishes the result — no incremental reparsing, matching
// spec.md's "no suspension points" and "single-file interactive
// reparses, not streaming". Grounded on the teacher's web/web.go file
// watcher (fsnotify + debounce), generalized from an HTTP server's
// reload loop into a plain channel-based subscription any collaborator
// (CLI, editor plugin) can consume.
package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ledgerfmt/ledgerfmt/parser"
)

// debounceDelay absorbs editors that write a file in several small
// steps around a single logical save, matching the teacher's own
// 100ms constant in web/web.go.
const debounceDelay = 100 * time.Millisecond

// Watcher reparses a single file on every change and publishes each
// resulting parser.ParserResult on Results.
type Watcher struct {
	path    string
	Results chan parser.ParserResult
	errs    chan error
}

// NewWatcher constructs a Watcher over path. Call Start to begin
// watching; the returned Watcher is otherwise inert.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:    path,
		Results: make(chan parser.ParserResult, 1),
		errs:    make(chan error, 1),
	}
}

// Errors returns the channel errors (watcher setup failures, read
// failures on change) are published on.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Start performs an initial parse, publishes it, then watches path for
// changes until ctx is canceled. It blocks until ctx.Done(); run it in
// its own goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.reparse(); err != nil {
		return fmt.Errorf("initial parse of %s: %w", w.path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.path); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				if err := w.reparse(); err != nil {
					w.publishErr(err)
				}
			})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.publishErr(err)
		}
	}
}

func (w *Watcher) reparse() error {
	source, err := os.ReadFile(w.path)
	if err != nil {
		return err
	}
	result := parser.Parse(w.path, source)
	w.publish(result)
	return nil
}

// publish sends result, dropping a stale unread value first so Results
// always holds the most recent parse rather than blocking the watcher
// goroutine on a slow consumer.
func (w *Watcher) publish(result parser.ParserResult) {
	select {
	case <-w.Results:
	default:
	}
	w.Results <- result
}

func (w *Watcher) publishErr(err error) {
	select {
	case <-w.errs:
	default:
	}
	w.errs <- err
}
