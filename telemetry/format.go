package telemetry

import (
	"fmt"
	"io"
	"strings"
)

// writeNode prints n and its children recursively, indenting each
// level by two spaces, matching the teacher's nested timing report
// shape (telemetry/format.go).
func writeNode(w io.Writer, n *node, depth int) {
	indent := strings.Repeat("  ", depth)
	dur := n.end.Sub(n.start)
	fmt.Fprintf(w, "%s%s: %s\n", indent, n.name, dur)
	for _, child := range n.children {
		writeNode(w, child, depth+1)
	}
}
