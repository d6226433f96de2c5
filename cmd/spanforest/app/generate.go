package app

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/cmd/spanforest/app/options"
	"github.com/katalvlaran/spanforest/exchange"
)

func newGenerateCommand(opts *options.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "generate",
		Short:                 "Generate a graph document",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := complete(cmd, opts, args); err != nil {
				return err
			}
			src, err := loadGraph(opts)
			if err != nil {
				return err
			}
			doc := exchange.Export(src.graph)
			doc.ID = src.id

			return writeDocument(cmd, opts, doc)
		},
	}
	opts.Generator.AddFlags(cmd.Flags())

	return cmd
}
