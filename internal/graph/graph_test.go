package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// normalize turns components into sorted members sorted by first member so
// they can be compared as a set of sets.
func normalize(comps []Component) [][]string {
	out := make([][]string, 0, len(comps))
	for _, c := range comps {
		members := append([]string(nil), c...)
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
}

func TestAddEdge_SelfPairAddsNodeOnly(t *testing.T) {
	g := New()
	g.AddEdge("g1", "g1")

	assert.True(t, g.HasNode("g1"))
	assert.False(t, g.HasEdge("g1", "g1"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddClique_EdgeCount(t *testing.T) {
	g := New()
	g.AddClique([]string{"a", "b", "c", "d"})

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}, {"c", "d"}} {
		assert.True(t, g.HasEdge(pair[0], pair[1]), "missing edge %v", pair)
	}
}

func TestAddClique_DuplicateNames(t *testing.T) {
	g := New()
	g.AddClique([]string{"a", "b", "a"})

	assert.Equal(t, []string{"a", "b"}, g.Nodes())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNeighbors(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("c", "a")

	assert.Equal(t, []string{"b", "c"}, g.Neighbors("a"))
	assert.Nil(t, g.Neighbors("missing"))
}

func TestConnectedComponents_Empty(t *testing.T) {
	assert.Empty(t, ConnectedComponents(New()))
}

func TestConnectedComponents_MergesThroughSharedGene(t *testing.T) {
	g := New()
	g.AddClique([]string{"g1", "g2", "g3"})
	g.AddClique([]string{"g3", "g4"})

	comps := ConnectedComponents(g)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []string{"g1", "g2", "g3", "g4"}, comps[0])
}

func TestConnectedComponents_Disjoint(t *testing.T) {
	g := New()
	g.AddClique([]string{"c", "d"})
	g.AddClique([]string{"a", "b"})

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, normalize(ConnectedComponents(g)))
}

func TestConnectedComponents_OrderFollowsInsertion(t *testing.T) {
	g := New()
	g.AddEdge("x", "y")
	g.AddEdge("a", "b")

	comps := ConnectedComponents(g)
	require.Len(t, comps, 2)
	assert.Equal(t, "x", comps[0][0])
	assert.Equal(t, "a", comps[1][0])
}

func TestConnectedComponents_Partition(t *testing.T) {
	g := New()
	lines := [][]string{
		{"a", "b"},
		{"b", "c", "d"},
		{"e", "f"},
		{"g", "g"},
		{"h", "i", "j"},
		{"j", "a"},
	}
	for _, l := range lines {
		g.AddClique(l)
	}

	comps := ConnectedComponents(g)
	seen := make(map[string]int)
	total := 0
	for _, c := range comps {
		for _, n := range c {
			seen[n]++
			total++
		}
	}
	assert.Equal(t, g.NodeCount(), total)
	for _, n := range g.Nodes() {
		assert.Equal(t, 1, seen[n], "node %s must be in exactly one component", n)
	}

	// Every line's genes share a component.
	owner := make(map[string]int)
	for i, c := range comps {
		for _, n := range c {
			owner[n] = i
		}
	}
	for _, l := range lines {
		for _, n := range l {
			assert.Equal(t, owner[l[0]], owner[n])
		}
	}
	assert.Len(t, comps, 3)
}
