package ast

import "golang.org/x/exp/slices"

// SymbolTable maps a declared name to the span of its first declaration.
// Re-adding an existing name is a no-op: the parser only ever checks Has
// before calling Add, so the stored span is always the first one seen
// (spec.md §4.9, §8 "Symbol-table stability").
type SymbolTable struct {
	spans map[string]Span
	// order preserves insertion order for deterministic iteration via
	// Names.
	order []string
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{spans: make(map[string]Span)}
}

// Has reports whether name has been declared.
func (t *SymbolTable) Has(name string) bool {
	_, ok := t.spans[name]
	return ok
}

// Add records name's declaration span if this is the first time name is
// seen. Subsequent calls for the same name are no-ops.
func (t *SymbolTable) Add(name string, span Span) {
	if t.Has(name) {
		return
	}
	t.spans[name] = span
	t.order = append(t.order, name)
}

// Get returns the first-declaration span for name, if declared.
func (t *SymbolTable) Get(name string) (Span, bool) {
	span, ok := t.spans[name]
	return span, ok
}

// Names returns the declared names in first-declaration order.
func (t *SymbolTable) Names() []string {
	return slices.Clone(t.order)
}

// Len reports the number of distinct declared names.
func (t *SymbolTable) Len() int { return len(t.order) }
