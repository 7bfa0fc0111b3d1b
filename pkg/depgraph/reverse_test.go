package depgraph

import (
	"context"
	"slices"
	"testing"
)

func buildFrom(t *testing.T, lookup stubLookup, root string, maxDepth int) *Graph {
	t.Helper()
	g, err := Build(context.Background(), lookup, root, Options{MaxDepth: maxDepth})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return g
}

func TestReverse(t *testing.T) {
	g := buildFrom(t, stubLookup{"A": {"B", "C"}, "B": {"C"}, "C": {}}, "A", 2)
	rev := Reverse(g)

	checkGraph(t, rev, []entry{
		{"A", nil},
		{"B", []string{"A"}},
		{"C", []string{"A", "B"}},
	})
}

func TestReverseRootAlone(t *testing.T) {
	g := buildFrom(t, stubLookup{}, "solo", 3)
	rev := Reverse(g)

	checkGraph(t, rev, []entry{{"solo", nil}})
}

func TestReverseReferencedOnlyNames(t *testing.T) {
	// "ghost" is referenced but never expanded (depth cutoff); it still
	// gets a reverse entry.
	g := buildFrom(t, stubLookup{"app": {"lib"}, "lib": {"ghost"}}, "app", 1)
	rev := Reverse(g)

	dependents, ok := rev.Deps("ghost")
	if !ok {
		t.Fatal("referenced-only name missing from reverse graph")
	}
	if want := []string{"lib"}; !slices.Equal(dependents, want) {
		t.Errorf("Deps(ghost) = %v, want %v", dependents, want)
	}
}

func TestReverseInvariant(t *testing.T) {
	lookup := stubLookup{
		"root": {"web", "db"},
		"web":  {"tls", "log"},
		"db":   {"tls"},
		"tls":  {},
		"log":  {},
	}
	g := buildFrom(t, lookup, "root", 3)
	rev := Reverse(g)

	// B in forward deps of A implies A in reverse deps of B.
	for _, a := range g.Packages() {
		deps, _ := g.Deps(a)
		for _, b := range deps {
			dependents, ok := rev.Deps(b)
			if !ok {
				t.Fatalf("reverse graph missing %q", b)
			}
			if !slices.Contains(dependents, a) {
				t.Errorf("%q -> %q recorded forward but %q not a dependent of %q", a, b, a, b)
			}
		}
	}

	// A in reverse deps of B implies B in forward deps of A.
	for _, b := range rev.Packages() {
		dependents, _ := rev.Deps(b)
		for _, a := range dependents {
			deps, ok := g.Deps(a)
			if !ok {
				t.Fatalf("reverse lists %q as a dependent but it is not a forward entry", a)
			}
			if !slices.Contains(deps, b) {
				t.Errorf("%q a dependent of %q but edge missing forward", a, b)
			}
		}
	}
}

func TestReverseDuplicateReferences(t *testing.T) {
	g := buildFrom(t, stubLookup{"app": {"lib", "lib"}}, "app", 1)
	rev := Reverse(g)

	dependents, _ := rev.Deps("lib")
	if want := []string{"app", "app"}; !slices.Equal(dependents, want) {
		t.Errorf("Deps(lib) = %v, want duplicated dependent %v", dependents, want)
	}
}

func TestReverseDeterministicOrder(t *testing.T) {
	lookup := stubLookup{"root": {"b", "a"}, "a": {"shared"}, "b": {"shared"}}
	g := buildFrom(t, lookup, "root", 2)

	first := Reverse(g)
	for run := 0; run < 3; run++ {
		if got := Reverse(g).Packages(); !slices.Equal(got, first.Packages()) {
			t.Fatalf("run %d: Packages() = %v, want %v", run, got, first.Packages())
		}
	}

	// Dependents follow forward iteration order: b was discovered before
	// a (list order of root), so b precedes a among shared's dependents.
	dependents, _ := first.Deps("shared")
	if want := []string{"b", "a"}; !slices.Equal(dependents, want) {
		t.Errorf("Deps(shared) = %v, want %v", dependents, want)
	}
}
