package depgraph

import (
	"errors"
	"slices"
)

// ErrDuplicatePackage is returned by [Graph.Add] when an entry with the
// same name already exists. A package is expanded at most once, so every
// name occurs as an entry at most once.
var ErrDuplicatePackage = errors.New("duplicate package entry")

// Graph is a directed dependency graph over package names.
//
// Entries map a package name to the dependency list recorded for it, in
// the exact order the lookup returned it (duplicates included). Entry
// iteration order is insertion order, which for graphs produced by [Build]
// is BFS discovery order. Names are opaque and case-sensitive.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent mutation; a completed graph is
// read-only and safe to share.
type Graph struct {
	order []string
	deps  map[string][]string
	edges int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{deps: make(map[string][]string)}
}

// Add records the dependency list for a package, preserving insertion
// order. The list is stored verbatim (order and duplicates kept) and is
// copied, so later changes to deps do not affect the graph. A nil list is
// recorded as an empty one - "no dependencies" is a valid entry, distinct
// from the name being absent.
//
// Returns [ErrDuplicatePackage] if the name is already an entry.
func (g *Graph) Add(name string, deps []string) error {
	if _, exists := g.deps[name]; exists {
		return ErrDuplicatePackage
	}
	list := slices.Clone(deps)
	if list == nil {
		list = []string{}
	}
	g.order = append(g.order, name)
	g.deps[name] = list
	g.edges += len(list)
	return nil
}

// Deps returns the recorded dependency list for a package and whether the
// package is an entry in the graph. The returned slice should not be
// modified - use it as a read-only view. A referenced-but-never-expanded
// name yields (nil, false).
func (g *Graph) Deps(name string) ([]string, bool) {
	deps, ok := g.deps[name]
	return deps, ok
}

// Has reports whether the package is an entry in the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.deps[name]
	return ok
}

// Packages returns all entry names in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Packages() []string {
	return slices.Clone(g.order)
}

// NodeCount returns the number of entries in the graph.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the total number of recorded dependency references,
// counting duplicates within a list separately.
func (g *Graph) EdgeCount() int { return g.edges }
