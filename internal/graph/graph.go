package graph

// Graph is an undirected simple graph over gene identifiers.
// Nodes keep their insertion order so traversals are reproducible.
type Graph struct {
	nodes []string
	index map[string]int
	adj   []map[int]struct{}
	edges int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddNode inserts a node if it is not already present and returns its index.
func (g *Graph) AddNode(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, name)
	g.index[name] = i
	g.adj = append(g.adj, make(map[int]struct{}))
	return i
}

// AddEdge links a and b, inserting either endpoint as needed.
// Re-adding an existing edge is a no-op, and a == b only adds the node.
func (g *Graph) AddEdge(a, b string) {
	ia := g.AddNode(a)
	ib := g.AddNode(b)
	if ia == ib {
		return
	}
	if _, ok := g.adj[ia][ib]; ok {
		return
	}
	g.adj[ia][ib] = struct{}{}
	g.adj[ib][ia] = struct{}{}
	g.edges++
}

// AddClique links every unordered pair of names.
func (g *Graph) AddClique(names []string) {
	for i, a := range names {
		for _, b := range names[i+1:] {
			g.AddEdge(a, b)
		}
	}
	// A single name still becomes a node.
	if len(names) == 1 {
		g.AddNode(names[0])
	}
}

// HasNode reports whether name is a node of g.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b string) bool {
	ia, ok := g.index[a]
	if !ok {
		return false
	}
	ib, ok := g.index[b]
	if !ok {
		return false
	}
	_, ok = g.adj[ia][ib]
	return ok
}

// Neighbors returns the nodes adjacent to name in insertion order.
func (g *Graph) Neighbors(name string) []string {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.adj[i]))
	for j := range g.nodes {
		if _, ok := g.adj[i][j]; ok {
			out = append(out, g.nodes[j])
		}
	}
	return out
}

// Nodes returns a copy of the node list in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return g.edges }
