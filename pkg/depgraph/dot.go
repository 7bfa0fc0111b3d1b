package depgraph

import (
	"bytes"
	"fmt"
)

// ToDOT serializes the forward graph in Graphviz DOT notation for an
// external layout tool: one directed-edge statement per recorded
// (package, dependency) pair in graph iteration order, and one isolated
// node statement for every entry with an empty dependency list. Names are
// emitted as quoted string literals with embedded quotes and control
// characters escaped, so hostile names cannot produce structurally
// invalid output.
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box];\n")
	buf.WriteString("\n")

	for _, pkg := range g.Packages() {
		deps, _ := g.Deps(pkg)
		if len(deps) == 0 {
			fmt.Fprintf(&buf, "  %q;\n", pkg)
			continue
		}
		for _, dep := range deps {
			fmt.Fprintf(&buf, "  %q -> %q;\n", pkg, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
