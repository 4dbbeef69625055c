package synteny

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/olehluchkiv/syngraph/internal/graph"
)

// maxLineSize bounds a single synteny row. Rows from whole-genome comparisons
// can list thousands of genes, well past bufio's 64 KiB default.
const maxLineSize = 16 * 1024 * 1024

// ParseLine tokenizes one input row. It returns false when the row has fewer
// tokens than the mode requires.
func ParseLine(line string, lineNo int, mode Mode) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < mode.MinTokens() {
		return Record{}, false
	}
	rec := Record{Line: lineNo}
	if mode.HasBlockLabel() {
		rec.Block = fields[0]
		fields = fields[1:]
	}
	rec.Genes = fields
	return rec, true
}

// Build reads synteny rows from r and links the genes of every surviving row
// into a clique. Short rows and filtered rows are skipped silently.
func Build(ctx context.Context, r io.Reader, opts BuildOptions, logger *slog.Logger) (*graph.Graph, BuildStats, error) {
	g := graph.New()
	var stats BuildStats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		stats.Lines++

		rec, ok := ParseLine(sc.Text(), stats.Lines, opts.Mode)
		if !ok {
			stats.Short++
			logger.Debug("skipping short row", "line", stats.Lines)
			continue
		}

		if rejectedBy := firstRejecting(opts.Filters, rec); rejectedBy != nil {
			stats.Filtered++
			logger.Debug("row rejected by filter", "line", rec.Line, "block", rec.Block, "filter", fmt.Sprintf("%T", rejectedBy))
			continue
		}

		g.AddClique(rec.Genes)
		stats.Kept++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading synteny rows: %w", err)
	}

	return g, stats, nil
}

// BuildFile opens path and runs Build over it. The file is closed before
// returning.
func BuildFile(ctx context.Context, path string, opts BuildOptions, logger *slog.Logger) (*graph.Graph, BuildStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	g, stats, err := Build(ctx, f, opts, logger)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	return g, stats, nil
}

func firstRejecting(filters []Filter, rec Record) Filter {
	for _, f := range filters {
		if !f.Keep(rec) {
			return f
		}
	}
	return nil
}
