// Package formatter renders a parsed ast.File back to text: either an
// exact round-trip (every byte of the original buffer, unchanged) or a
// "pretty" re-alignment of posting amounts into a fixed currency column,
// the two consumers spec.md §6 names as the hypothetical "Formatter"
// collaborator. Grounded on the teacher's formatter/formatter.go, which
// re-serializes every directive field-by-field with column alignment;
// our tree is lossless at the token level, so RoundTrip needs no
// re-serialization at all, and Pretty only needs to touch the narrow
// whitespace runs between an account and its amount rather than
// rebuild whole lines.
package formatter

// RoundTrip returns exactly the bytes source would produce if you
// concatenated OuterText across the lexical token stream — i.e. source
// itself. It exists as a named, documented entry point for callers that
// want to assert the invariant explicitly rather than reasoning about it
// implicitly; no command in the cli package calls it.
func RoundTrip(source []byte) string {
	return string(source)
}
