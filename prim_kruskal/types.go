package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/spanforest/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownStrategy indicates that Run was asked for a strategy it does not know.
var ErrUnknownStrategy = errors.New("prim_kruskal: unknown strategy")

// Strategy names a minimum spanning forest algorithm.
type Strategy string

// StrategyPrim selects Prim's algorithm (component-wise frontier expansion).
const StrategyPrim Strategy = "prim"

// StrategyKruskal selects Kruskal's algorithm (sort all edges and union-find).
const StrategyKruskal Strategy = "kruskal"

// Strategies lists every supported strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyPrim, StrategyKruskal}
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return string(s) }

// ParseStrategy maps a case-insensitive name onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case StrategyPrim:
		return StrategyPrim, nil
	case StrategyKruskal:
		return StrategyKruskal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Forest is the outcome of one algorithm run.
//
// Fields:
//
//	Strategy   : the algorithm that produced the forest.
//	Edges      : forest edges in the order the algorithm selected them.
//	TotalWeight: sum of Edges' weights, accumulated in selection order.
//	VertexCount: number of vertices in the graph at the time of the run.
type Forest struct {
	Strategy    Strategy
	Edges       []core.Edge
	TotalWeight float64
	VertexCount int
}

// Len returns the number of forest edges.
func (f *Forest) Len() int { return len(f.Edges) }

// EdgeIDs returns the handles of the forest edges, in selection order.
func (f *Forest) EdgeIDs() []core.EdgeID {
	ids := make([]core.EdgeID, 0, len(f.Edges))
	for _, e := range f.Edges {
		ids = append(ids, e.ID)
	}

	return ids
}

// Contains reports whether the edge with the given handle is part of the forest.
// Complexity: O(len(Edges)).
func (f *Forest) Contains(id core.EdgeID) bool {
	for _, e := range f.Edges {
		if e.ID == id {
			return true
		}
	}

	return false
}

// Components returns the number of trees in the forest, counting every
// isolated vertex as a one-vertex tree: |V| − |forest edges|.
func (f *Forest) Components() int { return f.VertexCount - len(f.Edges) }

// Observer is notified after every successful Run.
// The metrics package provides a Prometheus-backed implementation.
type Observer interface {
	ObserveRun(strategy Strategy, forest *Forest, elapsed time.Duration)
}

// Options configures Run.
type Options struct {
	// Observer, if non-nil, receives the result of every run.
	Observer Observer
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithObserver returns an Option that attaches an Observer. Nil is ignored.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// DefaultOptions returns Options with no observer.
func DefaultOptions() Options {
	return Options{}
}
