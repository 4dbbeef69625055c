// Package msog groups genes into multi-syntenic ortholog groups: connected
// components of the graph formed by linking every gene in a synteny row.
package msog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/olehluchkiv/syngraph/internal/graph"
	"github.com/olehluchkiv/syngraph/internal/groups"
	"github.com/olehluchkiv/syngraph/internal/synteny"
)

// ErrNegativeMaxParalog is returned by MSOP for a threshold below zero.
var ErrNegativeMaxParalog = errors.New("max paralog must be zero or greater")

// Result summarizes one pipeline run.
type Result struct {
	synteny.BuildStats
	Nodes      int
	Edges      int
	Components int
}

// MSO builds the co-occurrence graph from every row of input and writes its
// connected components to output as Group1, Group2, ...
func MSO(ctx context.Context, input, output string, logger *slog.Logger) (Result, error) {
	opts := synteny.BuildOptions{Mode: synteny.ModePlain}
	return run(ctx, input, output, opts, groups.LabelGroup, logger)
}

// MSOP is MSO with a block label in the first column and rows dropped when a
// species contributes more than maxParalog genes. Groups are written as MS1,
// MS2, ...
func MSOP(ctx context.Context, input, output string, maxParalog int, logger *slog.Logger) (Result, error) {
	if maxParalog < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNegativeMaxParalog, maxParalog)
	}
	opts := synteny.BuildOptions{
		Mode:    synteny.ModeParalog,
		Filters: []synteny.Filter{synteny.NewParalogFilter(maxParalog)},
	}
	return run(ctx, input, output, opts, groups.LabelMS, logger.With("max_paralog", maxParalog))
}

func run(ctx context.Context, input, output string, opts synteny.BuildOptions, label groups.Label, logger *slog.Logger) (Result, error) {
	logger.Info("building synteny graph", "input", input, "mode", opts.Mode.String())
	g, stats, err := synteny.BuildFile(ctx, input, opts, logger)
	if err != nil {
		return Result{}, err
	}

	comps := graph.ConnectedComponents(g)
	res := Result{
		BuildStats: stats,
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Components: len(comps),
	}

	if err := groups.WriteFile(output, label, comps); err != nil {
		return res, err
	}

	logger.Info("wrote groups",
		"output", output,
		"lines", res.Lines,
		"short", res.Short,
		"filtered", res.Filtered,
		"kept", res.Kept,
		"nodes", res.Nodes,
		"edges", res.Edges,
		"groups", res.Components,
	)
	return res, nil
}
