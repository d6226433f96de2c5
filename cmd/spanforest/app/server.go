package app

import (
	goflag "flag"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/spanforest/cmd/spanforest/app/options"
)

const ComponentName = "spanforest"

// NewSpanforestCommand builds the root command with its run, generate and
// inspect subcommands. All subcommands share one Options value.
func NewSpanforestCommand() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   ComponentName,
		Short: "Minimum spanning forests of weighted undirected graphs",
		Long: `spanforest loads or generates a weighted undirected graph and computes its
minimum spanning forest with Prim's or Kruskal's algorithm. Graphs and forests
are exchanged as JSON or YAML documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	opts.AddGlobalFlags(cmd.PersistentFlags())
	cmd.MarkPersistentFlagFilename(options.FlagConfig, "yaml", "yml", "json")

	cmd.AddCommand(
		newRunCommand(opts),
		newGenerateCommand(opts),
		newInspectCommand(opts),
	)

	return cmd
}

// complete resolves opts from the parsed flags, environment and config file,
// then validates them.
func complete(cmd *cobra.Command, opts *options.Options, args []string) error {
	if len(args) != 0 {
		return errors.Errorf("%s: arguments are not supported, got %v", cmd.Name(), args)
	}
	if err := opts.Load(cmd.Flags()); err != nil {
		return err
	}
	if errs := opts.Validate(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, err := range errs {
			msgs = append(msgs, err.Error())
		}

		return errors.Errorf("invalid options: %s", strings.Join(msgs, "; "))
	}
	klog.V(2).InfoS("Resolved options",
		"command", cmd.Name(),
		"config", opts.ConfigFile,
		"input", opts.Input,
		"output", opts.Output,
		"strategy", opts.Strategy,
		"shape", opts.Generator.Shape)

	return nil
}
