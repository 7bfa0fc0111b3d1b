// Package depgraph builds and renders bounded dependency graphs over a
// package index.
//
// # Overview
//
// apkgraph answers two questions about a package: what does it depend on,
// transitively, up to a bound, and what depends on it. This package provides
// the graph construction engine behind both answers: a breadth-first
// traversal that turns a per-package direct-dependency lookup into a
// bounded, filtered forward graph, plus the derived reverse (dependents)
// graph and the tree and DOT renderers that consume the forward graph.
//
// # Basic Usage
//
// Construct a forward graph with [Build], giving it a [Lookup] capability
// and a root package. Derive the dependents view with [Reverse]:
//
//	g, err := depgraph.Build(ctx, idx, "nginx", depgraph.Options{MaxDepth: 2})
//	if err != nil {
//	    return err
//	}
//	rev := depgraph.Reverse(g)
//
// Render with [WriteTree] for a terminal view or [ToDOT] for input to an
// external layout tool.
//
// # Graph Semantics
//
// A [Graph] maps package names to the dependency list recorded for them,
// preserving insertion order. A name's presence as an entry means the
// package was dequeued, admitted, and expanded during traversal; a name
// appearing only inside some dependency list was referenced but never
// itself expanded (excluded by filter, depth cutoff, or traversal end).
// Dependency lists are recorded verbatim from the lookup: order kept,
// duplicates kept, no post-filtering.
//
// # Determinism
//
// Given a deterministic lookup, [Build] produces a fully deterministic
// graph: entry set, entry order, and per-entry list order are stable
// across runs. [Reverse] inherits this determinism.
//
// # Concurrency
//
// Graph construction is single-threaded and fully synchronous; the only
// suspension points are the lookup calls themselves. Cancellation is
// honored through the context between dequeues. A completed Graph is
// immutable by convention and safe for concurrent reads.
package depgraph
