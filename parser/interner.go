package parser

// Interner deduplicates account and payee name strings so that repeated
// occurrences of the same name across a large journal share one backing
// string instead of allocating a fresh copy per token.
type Interner struct {
	pool map[string]string
}

// NewInterner creates an Interner with room for capacity distinct strings
// before its internal map needs to grow.
func NewInterner(capacity int) *Interner {
	return &Interner{pool: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, adding s to the pool if this is
// the first time it has been seen.
func (i *Interner) Intern(s string) string {
	if existing, ok := i.pool[s]; ok {
		return existing
	}
	i.pool[s] = s
	return s
}

// InternBytes interns the string conversion of b without forcing an
// allocation when b's contents are already in the pool: the map lookup
// on a []byte key uses the compiler's no-copy string-from-bytes
// optimization, and only a match miss pays for the conversion that is
// stored.
func (i *Interner) InternBytes(b []byte) string {
	if existing, ok := i.pool[string(b)]; ok {
		return existing
	}
	s := string(b)
	i.pool[s] = s
	return s
}

// Size returns the number of distinct strings currently interned.
func (i *Interner) Size() int {
	return len(i.pool)
}

// Reset discards every interned string.
func (i *Interner) Reset() {
	i.pool = make(map[string]string, len(i.pool))
}
