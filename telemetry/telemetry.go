// Package telemetry provides hierarchical timing collection for the
// lex/parse/format pipeline, passed through context.Context so the
// core parser package never needs to know telemetry exists. Adapted
// directly from the teacher's telemetry package, which times beancount
// load/parse phases the same way — the shape travels unchanged, only
// the operation names instrumented by callers differ.
package telemetry

import (
	"context"
	"io"
	"sync"
	"time"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector collects timing data for a run of the pipeline.
type Collector interface {
	// Start begins timing an operation and returns its Timer.
	Start(name string) Timer
	// Report writes the collected timing tree to w.
	Report(w io.Writer)
}

// Timer tracks one timed operation, possibly with nested children
// (e.g. "Parse" containing a "Lex" child).
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector attaches collector to ctx.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext retrieves the collector attached to ctx, or a no-op
// collector if none was attached — callers never need to nil-check.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noopCollector{}
}

// TimingCollector is the real Collector implementation: a tree of named
// timers built as Start/Child calls nest.
type TimingCollector struct {
	mu      sync.Mutex
	root    *node
	current *node
}

type node struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *node
	children []*node
}

// NewTimingCollector returns an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing name. The first call becomes the root; later
// calls nest under the most recently started timer that is still open,
// or under the root once the root itself has ended.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := &node{name: name, start: time.Now()}
	if c.root == nil {
		c.root = n
	} else {
		n.parent = c.current
		c.current.children = append(c.current.children, n)
	}
	c.current = n

	return &timer{collector: c, node: n}
}

// Report prints the timing tree, one line per node, indented by depth.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.root == nil {
		return
	}
	writeNode(w, c.root, 0)
}

type timer struct {
	collector *TimingCollector
	node      *node
}

func (t *timer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()
	t.node.end = time.Now()
	if t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

func (t *timer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()
	n := &node{name: name, start: time.Now(), parent: t.node}
	t.node.children = append(t.node.children, n)
	return &timer{collector: t.collector, node: n}
}

type noopCollector struct{}

func (noopCollector) Start(string) Timer  { return noopTimer{} }
func (noopCollector) Report(io.Writer)    {}

type noopTimer struct{}

func (noopTimer) End()                 {}
func (noopTimer) Child(string) Timer   { return noopTimer{} }
