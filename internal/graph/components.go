package graph

// Component is one connected component: a set of gene identifiers.
type Component []string

// ConnectedComponents partitions the nodes of g by reachability.
// Components come out in order of their earliest-inserted node, and members
// in breadth-first order from that node.
func ConnectedComponents(g *Graph) []Component {
	seen := make([]bool, len(g.nodes))
	var comps []Component

	for start := range g.nodes {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []int{start}
		var comp Component
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, g.nodes[cur])
			for next := range g.adj[cur] {
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
