package synteny

import "strings"

// DefaultMaxParalog is the number of same-species genes a row may carry
// before ParalogFilter rejects it.
const DefaultMaxParalog = 2

// speciesSegments is how many underscore-delimited segments form a species key.
const speciesSegments = 2

// Filter decides whether a parsed row takes part in the graph.
type Filter interface {
	Keep(rec Record) bool
}

// SpeciesKey returns the first two underscore-delimited segments of gene,
// or all of them when there are fewer.
func SpeciesKey(gene string) string {
	parts := strings.SplitN(gene, "_", speciesSegments+1)
	if len(parts) > speciesSegments {
		parts = parts[:speciesSegments]
	}
	return strings.Join(parts, "_")
}

// SpeciesCounts tallies genes per species key. Repeated genes count each time.
func SpeciesCounts(genes []string) map[string]int {
	counts := make(map[string]int)
	for _, g := range genes {
		counts[SpeciesKey(g)]++
	}
	return counts
}

// ParalogFilter rejects rows where some species contributes more than Max genes.
type ParalogFilter struct {
	Max int
}

// NewParalogFilter returns a filter allowing at most max genes per species.
func NewParalogFilter(max int) *ParalogFilter {
	return &ParalogFilter{Max: max}
}

func (f *ParalogFilter) Keep(rec Record) bool {
	for _, n := range SpeciesCounts(rec.Genes) {
		if n > f.Max {
			return false
		}
	}
	return true
}
