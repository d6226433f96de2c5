package app

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/cmd/spanforest/app/options"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/exchange"
)

// source is a graph together with where it came from.
type source struct {
	graph *core.Graph
	// id is the document ID of the input, or a fresh one for generated graphs.
	id string
	// report is nil for generated graphs.
	report *exchange.Report
}

// loadGraph reads opts.Input when set, and otherwise generates a graph from
// the generator options.
func loadGraph(opts *options.Options) (*source, error) {
	if opts.Input != "" {
		doc, err := exchange.ReadFile(opts.Input)
		if err != nil {
			return nil, errors.Wrap(err, "loading graph")
		}
		g, report, err := exchange.Import(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "importing %s", opts.Input)
		}
		if report.Dropped+report.Duplicates+report.SelfLoops > 0 {
			klog.InfoS("Skipped edge records",
				"input", opts.Input,
				"dropped", report.Dropped,
				"duplicates", report.Duplicates,
				"selfLoops", report.SelfLoops)
		}
		id := doc.ID
		if id == "" {
			id = uuid.NewString()
		}

		return &source{graph: g, id: id, report: report}, nil
	}

	gen := opts.Generator
	cons, err := gen.Constructor()
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph(nil, gen.BuilderOptions(), cons)
	if err != nil {
		return nil, errors.Wrapf(err, "generating %s graph", gen.Shape)
	}
	klog.V(2).InfoS("Generated graph",
		"shape", gen.Shape,
		"seed", gen.Seed,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount())

	return &source{graph: g, id: uuid.NewString()}, nil
}

// writeDocument encodes v to opts.Output, or to the command's stdout in
// opts.Format.
func writeDocument(cmd *cobra.Command, opts *options.Options, v any) error {
	if opts.ToStdout() {
		f, err := opts.ParsedFormat()
		if err != nil {
			return err
		}

		return errors.Wrap(exchange.Encode(cmd.OutOrStdout(), f, v), "writing stdout")
	}
	if err := exchange.WriteFile(opts.Output, v); err != nil {
		return errors.Wrap(err, "writing output")
	}
	klog.V(2).InfoS("Wrote document", "output", opts.Output)

	return nil
}
