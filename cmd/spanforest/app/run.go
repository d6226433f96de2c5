package app

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/spanforest/cmd/spanforest/app/options"
	"github.com/katalvlaran/spanforest/exchange"
	"github.com/katalvlaran/spanforest/metrics"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

func newRunCommand(opts *options.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the minimum spanning forest of a graph",
		Long: `Compute the minimum spanning forest of the graph read from --input, or of a
generated graph when no input is given, and write it as a forest document.`,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := complete(cmd, opts, args); err != nil {
				return err
			}

			return runForest(cmd, opts)
		},
	}
	opts.AddInputFlags(cmd.Flags())
	opts.AddRunFlags(cmd.Flags())

	return cmd
}

func runForest(cmd *cobra.Command, opts *options.Options) error {
	strategy, err := opts.ParsedStrategy()
	if err != nil {
		return err
	}
	src, err := loadGraph(opts)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	forest, err := prim_kruskal.Run(src.graph, strategy, prim_kruskal.WithObserver(metrics.New(reg)))
	if err != nil {
		return errors.Wrapf(err, "running %s", strategy)
	}
	klog.InfoS("Computed spanning forest",
		"graph", src.id,
		"strategy", strategy,
		"edges", forest.Len(),
		"components", forest.Components(),
		"totalWeight", forest.TotalWeight)

	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", opts.MetricsFile)
		}
	}

	doc := exchange.ExportForest(src.id, forest)
	exchange.RestoreIndices(doc, src.report)

	return writeDocument(cmd, opts, doc)
}
