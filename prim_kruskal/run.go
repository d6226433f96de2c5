package prim_kruskal

import (
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/spanforest/core"
)

// Run selects and runs the algorithm named by strategy on one consistent
// snapshot of g, and reports the result to the configured Observer.
//
//	– StrategyPrim:    component-wise Prim.
//	– StrategyKruskal: global sort + union-find.
//	– Otherwise:       ErrUnknownStrategy.
//
// Run replaces a process-wide "current algorithm": the choice is an explicit
// argument, so concurrent callers never interfere.
func Run(g *core.Graph, strategy Strategy, opts ...Option) (*Forest, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var run func(*core.Snapshot) ([]core.Edge, float64)
	switch strategy {
	case StrategyPrim:
		run = primForest
	case StrategyKruskal:
		run = kruskalForest
	default:
		return nil, ErrUnknownStrategy
	}

	start := time.Now()
	s := g.Snapshot()
	edges, total := run(s)
	forest := &Forest{
		Strategy:    strategy,
		Edges:       edges,
		TotalWeight: total,
		VertexCount: len(s.Vertices),
	}
	elapsed := time.Since(start)

	klog.V(4).InfoS("Computed spanning forest",
		"strategy", strategy,
		"vertices", forest.VertexCount,
		"edges", forest.Len(),
		"components", forest.Components(),
		"totalWeight", forest.TotalWeight,
		"duration", elapsed)
	if o.Observer != nil {
		o.Observer.ObserveRun(strategy, forest, elapsed)
	}

	return forest, nil
}
