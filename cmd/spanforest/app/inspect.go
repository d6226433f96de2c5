package app

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/bfs"
	"github.com/katalvlaran/spanforest/cmd/spanforest/app/options"
)

// Summary is the document printed by inspect.
type Summary struct {
	GraphID     string  `json:"graph_id" yaml:"graph_id"`
	Vertices    int     `json:"vertices" yaml:"vertices"`
	Edges       int     `json:"edges" yaml:"edges"`
	Isolated    int     `json:"isolated" yaml:"isolated"`
	Components  int     `json:"components" yaml:"components"`
	TotalWeight float64 `json:"total_weight" yaml:"total_weight"`

	// Import counters, present only for --input documents.
	Dropped    int `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Duplicates int `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	SelfLoops  int `json:"self_loops,omitempty" yaml:"self_loops,omitempty"`
}

func newInspectCommand(opts *options.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "inspect",
		Short:                 "Summarize a graph document",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := complete(cmd, opts, args); err != nil {
				return err
			}
			src, err := loadGraph(opts)
			if err != nil {
				return err
			}

			return writeDocument(cmd, opts, summarize(src))
		},
	}
	opts.AddInputFlags(cmd.Flags())

	return cmd
}

func summarize(src *source) *Summary {
	stats := src.graph.Stats()
	out := &Summary{
		GraphID:     src.id,
		Vertices:    stats.VertexCount,
		Edges:       stats.EdgeCount,
		Isolated:    stats.IsolatedCount,
		Components:  bfs.ComponentCount(src.graph),
		TotalWeight: stats.TotalWeight,
	}
	if src.report != nil {
		out.Dropped = src.report.Dropped
		out.Duplicates = src.report.Duplicates
		out.SelfLoops = src.report.SelfLoops
	}

	return out
}
