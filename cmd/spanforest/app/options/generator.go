package options

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanforest/builder"
)

// MaxIntWeight bounds --max-weight for the int distribution, which converts
// both bounds to int before sampling.
const MaxIntWeight = math.MaxInt32

// Weight distributions accepted by --weights.
const (
	WeightsUniform  = "uniform"
	WeightsInt      = "int"
	WeightsConstant = "constant"
)

// shapes maps a --shape value to its constructor factory.
var shapes = map[string]func(g GeneratorOptions) builder.Constructor{
	"path":      func(g GeneratorOptions) builder.Constructor { return builder.Path(g.Vertices) },
	"cycle":     func(g GeneratorOptions) builder.Constructor { return builder.Cycle(g.Vertices) },
	"star":      func(g GeneratorOptions) builder.Constructor { return builder.Star(g.Vertices) },
	"wheel":     func(g GeneratorOptions) builder.Constructor { return builder.Wheel(g.Vertices) },
	"complete":  func(g GeneratorOptions) builder.Constructor { return builder.Complete(g.Vertices) },
	"bipartite": func(g GeneratorOptions) builder.Constructor { return builder.CompleteBipartite(g.Rows, g.Cols) },
	"grid":      func(g GeneratorOptions) builder.Constructor { return builder.Grid(g.Rows, g.Cols) },
	"random": func(g GeneratorOptions) builder.Constructor {
		return builder.RandomSparse(g.Vertices, g.Probability)
	},
}

// Shapes lists the accepted --shape values in sorted order.
func Shapes() []string {
	out := make([]string, 0, len(shapes))
	for name := range shapes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// GeneratorOptions describes a synthetic graph. Bipartite uses Rows and Cols
// as the two partition sizes.
type GeneratorOptions struct {
	Shape       string
	Vertices    int
	Rows        int
	Cols        int
	Probability float64
	Seed        int64
	Weights     string
	MinWeight   float64
	MaxWeight   float64
}

// NewGeneratorOptions returns a small seeded random graph with integer weights.
func NewGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Shape:       "random",
		Vertices:    16,
		Rows:        4,
		Cols:        4,
		Probability: 0.3,
		Seed:        1,
		Weights:     WeightsInt,
		MinWeight:   1,
		MaxWeight:   10,
	}
}

// AddFlags registers the generator flags.
func (g *GeneratorOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&g.Shape, FlagShape, g.Shape, fmt.Sprintf("Generated graph shape. One of %s.", strings.Join(Shapes(), ", ")))
	fs.IntVarP(&g.Vertices, FlagVertices, "n", g.Vertices, "Vertex count for path, cycle, star, wheel, complete and random shapes.")
	fs.IntVar(&g.Rows, FlagRows, g.Rows, "Grid rows, or the left partition size of a bipartite graph.")
	fs.IntVar(&g.Cols, FlagCols, g.Cols, "Grid columns, or the right partition size of a bipartite graph.")
	fs.Float64VarP(&g.Probability, FlagProbability, "p", g.Probability, "Edge probability for the random shape, in [0,1].")
	fs.Int64Var(&g.Seed, FlagSeed, g.Seed, "Seed for edge sampling and weight generation.")
	fs.StringVar(&g.Weights, FlagWeights, g.Weights, "Edge weight distribution: uniform, int or constant (uses --min-weight).")
	fs.Float64Var(&g.MinWeight, FlagMinWeight, g.MinWeight, "Lower bound of generated edge weights.")
	fs.Float64Var(&g.MaxWeight, FlagMaxWeight, g.MaxWeight, "Upper bound of generated edge weights.")
}

func (g *GeneratorOptions) setDefaults(v *viper.Viper) {
	v.SetDefault(FlagShape, g.Shape)
	v.SetDefault(FlagVertices, g.Vertices)
	v.SetDefault(FlagRows, g.Rows)
	v.SetDefault(FlagCols, g.Cols)
	v.SetDefault(FlagProbability, g.Probability)
	v.SetDefault(FlagSeed, g.Seed)
	v.SetDefault(FlagWeights, g.Weights)
	v.SetDefault(FlagMinWeight, g.MinWeight)
	v.SetDefault(FlagMaxWeight, g.MaxWeight)
}

func (g *GeneratorOptions) load(v *viper.Viper) {
	g.Shape = v.GetString(FlagShape)
	g.Vertices = v.GetInt(FlagVertices)
	g.Rows = v.GetInt(FlagRows)
	g.Cols = v.GetInt(FlagCols)
	g.Probability = v.GetFloat64(FlagProbability)
	g.Seed = v.GetInt64(FlagSeed)
	g.Weights = v.GetString(FlagWeights)
	g.MinWeight = v.GetFloat64(FlagMinWeight)
	g.MaxWeight = v.GetFloat64(FlagMaxWeight)
}

// Validate checks the generator parameters that the builder would otherwise
// reject with a panic (weight bounds, int overflow) or only at build time
// (shape name).
func (g *GeneratorOptions) Validate() []error {
	var errs []error
	if _, ok := shapes[g.Shape]; !ok {
		errs = append(errs, errors.Errorf("--%s: unknown shape %q, want one of %v", FlagShape, g.Shape, Shapes()))
	}
	if g.Vertices < 1 {
		errs = append(errs, errors.Errorf("--%s: must be at least 1, got %d", FlagVertices, g.Vertices))
	}
	if g.Rows < 1 || g.Cols < 1 {
		errs = append(errs, errors.Errorf("--%s/--%s: must be at least 1, got %dx%d", FlagRows, FlagCols, g.Rows, g.Cols))
	}
	if g.Probability < 0 || g.Probability > 1 {
		errs = append(errs, errors.Errorf("--%s: must be in [0,1], got %g", FlagProbability, g.Probability))
	}
	if g.MinWeight < 0 || g.MaxWeight < g.MinWeight {
		errs = append(errs, errors.Errorf("--%s/--%s: require 0 <= min <= max, got %g and %g",
			FlagMinWeight, FlagMaxWeight, g.MinWeight, g.MaxWeight))
	}
	switch g.Weights {
	case WeightsInt:
		if g.MaxWeight > MaxIntWeight {
			errs = append(errs, errors.Errorf("--%s: must be at most %d for --%s=%s, got %g",
				FlagMaxWeight, MaxIntWeight, FlagWeights, WeightsInt, g.MaxWeight))
		}
	case WeightsUniform, WeightsConstant:
	default:
		errs = append(errs, errors.Errorf("--%s: unknown distribution %q", FlagWeights, g.Weights))
	}

	return errs
}

// Constructor returns the builder constructor for the configured shape.
func (g GeneratorOptions) Constructor() (builder.Constructor, error) {
	factory, ok := shapes[g.Shape]
	if !ok {
		return nil, errors.Errorf("unknown shape %q", g.Shape)
	}

	return factory(g), nil
}

// BuilderOptions translates the seed and weight flags. Call Validate first;
// the weight functions panic on inverted bounds.
func (g GeneratorOptions) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(g.Seed)}
	switch g.Weights {
	case WeightsUniform:
		opts = append(opts, builder.WithUniformWeight(g.MinWeight, g.MaxWeight))
	case WeightsInt:
		opts = append(opts, builder.WithIntWeight(int(g.MinWeight), int(g.MaxWeight)))
	case WeightsConstant:
		opts = append(opts, builder.WithConstantWeight(g.MinWeight))
	}

	return opts
}
