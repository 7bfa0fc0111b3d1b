package depgraph

// Reverse derives the dependents graph from a completed forward graph.
//
// Every name that appears in the forward graph - as an entry or inside any
// dependency list - has an entry in the result, possibly empty, so callers
// never need an existence check beyond the two-value [Graph.Deps]. For a
// name B, the dependents list holds every forward entry A with B in its
// dependency list, in forward iteration order (entries first, then each
// entry's list order); a duplicated reference contributes a duplicated
// dependent. Entry order of the result is forward entry order followed by
// referenced-only names in first-appearance order.
//
// The invariant both directions: B is in the forward deps of A if and only
// if A is in the reverse deps of B.
func Reverse(g *Graph) *Graph {
	pkgs := g.Packages()

	dependents := make(map[string][]string)
	order := make([]string, 0, len(pkgs))
	seen := make(map[string]bool, len(pkgs))

	note := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	for _, pkg := range pkgs {
		note(pkg)
	}
	for _, pkg := range pkgs {
		deps, _ := g.Deps(pkg)
		for _, dep := range deps {
			note(dep)
			dependents[dep] = append(dependents[dep], pkg)
		}
	}

	rev := New()
	for _, name := range order {
		_ = rev.Add(name, dependents[name])
	}
	return rev
}
