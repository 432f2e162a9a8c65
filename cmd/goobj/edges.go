package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/goobj/internal/config"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/spf13/cobra"
)

type edgesOptions struct {
	longest   bool
	shortest  bool
	minLength float64
	maxLength float64
}

func newEdgesCmd() *cobra.Command {
	opts := &edgesOptions{}

	cmd := &cobra.Command{
		Use:   "edges [file]",
		Short: "Analyze and measure edges in an OBJ file",
		Long: `Find and measure the unique edges of the triangulated mesh, including
longest, shortest, or edges within a specific length range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}
			printEdges(cmd.OutOrStdout(), analysis.AnalyzeModel(model), opts)
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", config.Default().Report.Count, "Number of edges to display (overrides config)")
	cmd.Flags().BoolVarP(&opts.longest, "longest", "l", false, "Show longest edges")
	cmd.Flags().BoolVarP(&opts.shortest, "shortest", "s", false, "Show shortest edges")
	cmd.Flags().Float64Var(&opts.minLength, "min", 0.0, "Minimum edge length filter")
	cmd.Flags().Float64Var(&opts.maxLength, "max", 0.0, "Maximum edge length filter")
	cmd.MarkFlagsMutuallyExclusive("longest", "shortest")

	return cmd
}

func printEdges(w io.Writer, result *analysis.MeasurementResult, opts *edgesOptions) {
	count := cfg.Report.Count
	precision := cfg.Report.Precision

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case opts.longest:
		edges = analysis.FindLongestEdges(result, count)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case opts.shortest:
		edges = analysis.FindShortestEdges(result, count)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case opts.maxLength > 0:
		edges = analysis.FindEdgesByLength(result, opts.minLength, opts.maxLength)
		title = fmt.Sprintf("Edges between %.*f and %.*f units (found %d)",
			precision, opts.minLength, precision, opts.maxLength, len(edges))
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(count, len(edges)), len(edges))
	}
	if len(edges) > count {
		edges = edges[:count]
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Total edges in model: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "Min edge length: %.*f units\n", precision, result.MinEdgeLength)
	fmt.Fprintf(w, "Max edge length: %.*f units\n", precision, result.MaxEdgeLength)
	fmt.Fprintf(w, "Avg edge length: %.*f units\n\n", precision, result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Fprintln(w, "No edges found matching the criteria.")
		return
	}

	fmt.Fprintf(w, "%-6s %-13s %-35s %-35s %-15s\n", "Index", "Positions", "Start", "End", "Length")
	fmt.Fprintln(w, "-------------------------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Fprintf(w, "%-6d %-13s %-35s %-35s %-15.*f\n",
			i+1,
			fmt.Sprintf("%d-%d", edge.StartIndex+1, edge.EndIndex+1),
			analysis.FormatVector(edge.Start, precision),
			analysis.FormatVector(edge.End, precision),
			precision, edge.Length)
	}
}
