package depgraph

import (
	"bytes"
	"io"
)

// WriteTree writes the forward graph as an indented tree rooted at root,
// one package per line with box-drawing connectors. Names that are not
// graph entries render as leaves. A name encountered again on the current
// root-to-node path is printed with a cycle marker and not descended into,
// so rendering terminates even if the stored graph carries back-edges
// between entries.
func WriteTree(w io.Writer, g *Graph, root string) error {
	var buf bytes.Buffer
	writeNode(&buf, g, root, "", "", make(map[string]bool))
	_, err := w.Write(buf.Bytes())
	return err
}

// writeNode emits one package line and recurses into its dependencies.
// lead precedes the name on its own line; indent starts every child line.
// onPath holds the names on the current root-to-node path.
func writeNode(buf *bytes.Buffer, g *Graph, name, lead, indent string, onPath map[string]bool) {
	buf.WriteString(lead)
	buf.WriteString(name)
	if onPath[name] {
		buf.WriteString(" (cycle)\n")
		return
	}
	buf.WriteByte('\n')

	deps, ok := g.Deps(name)
	if !ok {
		return
	}

	onPath[name] = true
	defer delete(onPath, name)

	for i, dep := range deps {
		if i == len(deps)-1 {
			writeNode(buf, g, dep, indent+"└── ", indent+"    ", onPath)
		} else {
			writeNode(buf, g, dep, indent+"├── ", indent+"│   ", onPath)
		}
	}
}
