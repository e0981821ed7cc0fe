// Package depgraph builds the inter-plugin dependency graph and detects
// circular dependency chains.
package depgraph

import (
	"sort"

	"github.com/potions-sh/cauldron/internal/log"
	"github.com/potions-sh/cauldron/internal/manifest"
)

// Graph holds forward and reverse adjacency between plugin names.
//
// An edge A -> B means manifest A declares a dependency on B, whether or not
// B exists in the registry. Unresolved edges stay in the graph; they surface
// later as validation errors, never as graph-construction errors.
type Graph struct {
	// DependsOn maps a plugin to the set of names it depends on.
	DependsOn map[string]map[string]bool

	// DependedOnBy maps a plugin to the set of names that depend on it.
	DependedOnBy map[string]map[string]bool
}

// Build constructs the graph from a loaded registry. Dependency declarations
// without a name are ignored here (the validator reports them). Multiple
// declarations of the same dependency collapse to one edge.
func Build(reg manifest.Registry) *Graph {
	g := &Graph{
		DependsOn:    make(map[string]map[string]bool),
		DependedOnBy: make(map[string]map[string]bool),
	}
	for name, m := range reg {
		for _, dep := range m.Dependencies {
			if dep.Name == "" {
				continue
			}
			g.addEdge(name, dep.Name)
		}
	}
	log.Debug(log.CatGraph, "graph built", "plugins", len(reg), "edges", g.EdgeCount())
	return g
}

func (g *Graph) addEdge(from, to string) {
	if g.DependsOn[from] == nil {
		g.DependsOn[from] = make(map[string]bool)
	}
	g.DependsOn[from][to] = true

	if g.DependedOnBy[to] == nil {
		g.DependedOnBy[to] = make(map[string]bool)
	}
	g.DependedOnBy[to][from] = true
}

// EdgeCount returns the total number of forward edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, deps := range g.DependsOn {
		n += len(deps)
	}
	return n
}

// neighbors returns node's forward edges in sorted order so traversal is
// deterministic.
func (g *Graph) neighbors(node string) []string {
	set := g.DependsOn[node]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
