package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestWatcherReparsesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.journal")
	assert.NoError(t, os.WriteFile(path, []byte("2024-06-12 A\n  Assets:X  $1\n  Assets:Y\n"), 0o644))

	w := NewWatcher(path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Start(ctx)
	}()

	select {
	case res := <-w.Results:
		assert.Equal(t, 1, len(res.File.Children))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial parse")
	}

	assert.NoError(t, os.WriteFile(path, []byte("2024-06-12 A\n  Assets:X  $1\n  Assets:Y\n2024-06-13 B\n  Assets:X  $2\n  Assets:Y\n"), 0o644))

	select {
	case res := <-w.Results:
		assert.Equal(t, 2, len(res.File.Children))
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reparse after write")
	}
}
