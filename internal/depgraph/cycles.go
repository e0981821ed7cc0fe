package depgraph

// FindCycles runs a depth-first traversal from every root not yet visited
// and returns the circular dependency chains it encounters. Each cycle is a
// closed walk: the sub-path from the repeated node's first occurrence, with
// that node appended again at the end (A -> B -> C -> A is returned as
// ["A", "B", "C", "A"]).
//
// A node is used as a DFS root at most once, so the traversal is linear in
// nodes plus edges. Cycles reached from multiple roots before their nodes
// are marked visited can be reported more than once; callers get the raw
// sequence without deduplication.
func (g *Graph) FindCycles(roots []string) [][]string {
	d := &dfs{
		graph:   g,
		visited: make(map[string]bool),
		onStack: make(map[string]bool),
	}
	for _, root := range roots {
		if !d.visited[root] {
			d.visit(root)
		}
	}
	return d.cycles
}

type dfs struct {
	graph   *Graph
	visited map[string]bool
	onStack map[string]bool
	path    []string
	cycles  [][]string
}

func (d *dfs) visit(node string) {
	d.visited[node] = true
	d.onStack[node] = true
	d.path = append(d.path, node)

	for _, neighbor := range d.graph.neighbors(node) {
		if !d.visited[neighbor] {
			d.visit(neighbor)
		} else if d.onStack[neighbor] {
			d.recordCycle(neighbor)
		}
	}

	d.onStack[node] = false
	d.path = d.path[:len(d.path)-1]
}

// recordCycle copies the current path from the repeated node's first
// occurrence and closes the walk by appending the node again.
func (d *dfs) recordCycle(node string) {
	start := 0
	for i, p := range d.path {
		if p == node {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(d.path)-start+1)
	cycle = append(cycle, d.path[start:]...)
	cycle = append(cycle, node)
	d.cycles = append(d.cycles, cycle)
}
