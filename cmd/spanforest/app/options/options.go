package options

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanforest/exchange"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// EnvPrefix prefixes every environment override, e.g. SPANFOREST_STRATEGY.
const EnvPrefix = "spanforest"

// Flag names double as viper keys and config file keys.
const (
	FlagConfig      = "config"
	FlagInput       = "input"
	FlagOutput      = "output"
	FlagFormat      = "format"
	FlagStrategy    = "strategy"
	FlagMetricsFile = "metrics-file"
	FlagShape       = "shape"
	FlagVertices    = "vertices"
	FlagRows        = "rows"
	FlagCols        = "cols"
	FlagProbability = "probability"
	FlagSeed        = "seed"
	FlagWeights     = "weights"
	FlagMinWeight   = "min-weight"
	FlagMaxWeight   = "max-weight"
)

// Options holds everything the spanforest subcommands read from flags,
// environment and an optional config file.
type Options struct {
	// ConfigFile is a YAML or JSON file whose keys match the flag names.
	// Flags override environment variables, which override the file.
	ConfigFile string

	// Input is a graph document to load. Empty means generate one.
	Input string

	// Output is where the produced document goes. Empty or "-" means stdout.
	Output string

	// Format is the codec used for stdout; files follow their extension.
	Format string

	Strategy string

	// MetricsFile, if set, receives the Prometheus text exposition after a run.
	MetricsFile string

	Generator GeneratorOptions
}

// NewOptions returns default spanforest options.
func NewOptions() *Options {
	return &Options{
		Format:    string(exchange.FormatJSON),
		Strategy:  string(prim_kruskal.StrategyKruskal),
		Generator: NewGeneratorOptions(),
	}
}

// AddGlobalFlags registers flags every subcommand understands.
func (o *Options) AddGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, FlagConfig, o.ConfigFile, "The path to a YAML or JSON configuration file. Flags override values in this file.")
	fs.StringVarP(&o.Output, FlagOutput, "o", o.Output, "Write the resulting document to this file instead of stdout. The extension selects the codec.")
	fs.StringVar(&o.Format, FlagFormat, o.Format, "Codec for stdout output: json or yaml.")
}

// AddInputFlags registers the graph source flags.
func (o *Options) AddInputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Input, FlagInput, "i", o.Input, "Read the graph document from this file. When empty a graph is generated from the generator flags.")
	o.Generator.AddFlags(fs)
}

// AddRunFlags registers the flags specific to the run subcommand.
func (o *Options) AddRunFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Strategy, FlagStrategy, "s", o.Strategy, fmt.Sprintf("Spanning forest algorithm. One of %v.", prim_kruskal.Strategies()))
	fs.StringVar(&o.MetricsFile, FlagMetricsFile, o.MetricsFile, "If set, write Prometheus metrics for the run to this file.")
}

// Load resolves every option from fs, the SPANFOREST_* environment and the
// config file named by --config, in that order of precedence.
// fs must already be parsed.
func (o *Options) Load(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	o.setDefaults(v)

	if err := v.BindPFlags(fs); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	if path := v.GetString(FlagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
		o.ConfigFile = path
	}

	o.Input = v.GetString(FlagInput)
	o.Output = v.GetString(FlagOutput)
	o.Format = v.GetString(FlagFormat)
	o.Strategy = v.GetString(FlagStrategy)
	o.MetricsFile = v.GetString(FlagMetricsFile)
	o.Generator.load(v)

	return nil
}

// setDefaults seeds v with the current field values so keys that are not
// registered as flags on this subcommand keep their defaults.
func (o *Options) setDefaults(v *viper.Viper) {
	v.SetDefault(FlagConfig, o.ConfigFile)
	v.SetDefault(FlagInput, o.Input)
	v.SetDefault(FlagOutput, o.Output)
	v.SetDefault(FlagFormat, o.Format)
	v.SetDefault(FlagStrategy, o.Strategy)
	v.SetDefault(FlagMetricsFile, o.MetricsFile)
	o.Generator.setDefaults(v)
}

// Validate checks all options and returns every problem found.
func (o *Options) Validate() []error {
	var errs []error
	if _, err := prim_kruskal.ParseStrategy(o.Strategy); err != nil {
		errs = append(errs, errors.Wrapf(err, "--%s", FlagStrategy))
	}
	if _, err := exchange.ParseFormat(o.Format); err != nil {
		errs = append(errs, errors.Wrapf(err, "--%s", FlagFormat))
	}
	if o.Output != "" && o.Output != "-" {
		if _, err := exchange.FormatFromPath(o.Output); err != nil {
			errs = append(errs, errors.Wrapf(err, "--%s", FlagOutput))
		}
	}
	if o.Input != "" {
		if _, err := exchange.FormatFromPath(o.Input); err != nil {
			errs = append(errs, errors.Wrapf(err, "--%s", FlagInput))
		}
	}
	errs = append(errs, o.Generator.Validate()...)

	return errs
}

// ParsedStrategy returns the validated strategy value.
func (o *Options) ParsedStrategy() (prim_kruskal.Strategy, error) {
	return prim_kruskal.ParseStrategy(o.Strategy)
}

// ParsedFormat returns the validated stdout format.
func (o *Options) ParsedFormat() (exchange.Format, error) {
	return exchange.ParseFormat(o.Format)
}

// ToStdout reports whether output goes to standard output.
func (o *Options) ToStdout() bool {
	return o.Output == "" || o.Output == "-"
}
