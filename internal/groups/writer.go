package groups

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olehluchkiv/syngraph/internal/graph"
)

// Label is the prefix written before each group number.
type Label string

const (
	// LabelGroup is used by plain mode: Group1, Group2, ...
	LabelGroup Label = "Group"
	// LabelMS is used by paralog-filtered mode: MS1, MS2, ...
	LabelMS Label = "MS"
)

// FormatLine renders one output row: label+n, then the sorted, deduplicated
// members, all tab-separated.
func FormatLine(label Label, n int, comp graph.Component) string {
	var b strings.Builder
	b.WriteString(string(label))
	b.WriteString(strconv.Itoa(n))
	for _, gene := range sortedUnique(comp) {
		b.WriteByte('\t')
		b.WriteString(gene)
	}
	b.WriteByte('\n')
	return b.String()
}

// Write emits one line per component, numbered from 1 in the given order.
func Write(w io.Writer, label Label, comps []graph.Component) error {
	bw := bufio.NewWriter(w)
	for i, comp := range comps {
		if _, err := bw.WriteString(FormatLine(label, i+1, comp)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates or truncates path and writes the components to it.
// An empty component list leaves an empty file.
func WriteFile(path string, label Label, comps []graph.Component) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := Write(f, label, comps); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func sortedUnique(comp graph.Component) []string {
	out := make([]string, len(comp))
	copy(out, comp)
	sort.Strings(out)
	j := 0
	for i, s := range out {
		if i > 0 && s == out[j-1] {
			continue
		}
		out[j] = s
		j++
	}
	return out[:j]
}
