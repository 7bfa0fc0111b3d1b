package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apkgraph/apkgraph/pkg/depgraph"
)

// writeGraphJSON writes the graph as an ordered JSON array, one object
// per entry in graph iteration order, so output is deterministic and
// diffs cleanly across runs. The edge field name depends on direction:
// "depends_on" for the forward graph, "required_by" for the reverse one.
func writeGraphJSON(w io.Writer, g *depgraph.Graph, edgeField string) error {
	out := make([]map[string]any, 0, g.NodeCount())
	for _, pkg := range g.Packages() {
		deps, _ := g.Deps(pkg)
		out = append(out, map[string]any{
			"package": pkg,
			edgeField: deps,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
