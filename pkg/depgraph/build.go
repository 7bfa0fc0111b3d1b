package depgraph

import (
	"context"
	"strings"

	"github.com/apkgraph/apkgraph/pkg/apkerrors"
)

// Lookup retrieves the ordered direct dependencies of a package.
//
// Implementations return an empty list (not an error) when the package is
// unknown to the backing source; "no dependencies found" is never
// distinguished from "package unknown". Errors are reserved for the
// backing source being unreachable, unreadable, or malformed.
type Lookup interface {
	Lookup(ctx context.Context, name string) ([]string, error)
}

// Options configures graph construction.
type Options struct {
	// MaxDepth is the inclusive bound on the number of edges from the
	// root. Zero means the root alone is expanded.
	MaxDepth int

	// Exclude drops every package whose name contains it as a substring:
	// the package is never recorded as an entry and never expanded. Its
	// name may still appear inside other packages' dependency lists,
	// which are recorded verbatim. Empty disables filtering.
	Exclude string
}

type queueItem struct {
	name  string
	depth int
}

// Build performs a bounded, filtered breadth-first traversal over the
// lookup, producing the forward dependency graph rooted at root.
//
// Each package is dequeued and expanded at most once; entry order is BFS
// discovery order. A package past the depth bound or matching the exclude
// filter is dropped entirely - not recorded, not expanded. Dependencies
// are enqueued only while the current depth is below the bound, so every
// entry is reachable from the root within MaxDepth edges. Cycles and
// self-dependencies terminate naturally through the visited set.
//
// Lookup failures abort the traversal and are propagated unchanged.
// Cancellation is checked between dequeues.
func Build(ctx context.Context, lookup Lookup, root string, opts Options) (*Graph, error) {
	if root == "" {
		return nil, apkerrors.New(apkerrors.ErrCodeInvalidPackage, "root package name must not be empty")
	}
	if opts.MaxDepth < 0 {
		return nil, apkerrors.New(apkerrors.ErrCodeInvalidInput, "max depth must be >= 0, got %d", opts.MaxDepth)
	}

	g := New()
	visited := make(map[string]bool)
	queue := []queueItem{{name: root, depth: 0}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := queue[0]
		queue = queue[1:]

		// Dedup safety net: a name can be enqueued more than once (diamond
		// dependencies) before either copy is processed.
		if visited[item.name] {
			continue
		}
		if item.depth > opts.MaxDepth {
			continue
		}
		if opts.Exclude != "" && strings.Contains(item.name, opts.Exclude) {
			continue
		}

		visited[item.name] = true
		deps, err := lookup.Lookup(ctx, item.name)
		if err != nil {
			return nil, err
		}
		_ = g.Add(item.name, deps)

		if item.depth < opts.MaxDepth {
			for _, dep := range deps {
				if !visited[dep] {
					queue = append(queue, queueItem{name: dep, depth: item.depth + 1})
				}
			}
		}
	}

	return g, nil
}
