// Package builder provides internal helper functions used by Constructor
// implementations: layout, vertex insertion and edge insertion with context.
package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanforest/core"
)

// validateMin returns ErrTooFewVertices wrapped with method context when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// addVertices inserts one vertex per position, in order, and returns their handles.
// Complexity: O(len(pos)).
func addVertices(g *core.Graph, pos []r2.Vec) []core.VertexID {
	ids := make([]core.VertexID, len(pos))
	for i, p := range pos {
		ids[i] = g.AddVertexAt(p)
	}

	return ids
}

// addEdge connects u and v with the next configured weight.
// A refusal from the graph is reported as ErrConstructFailed.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v core.VertexID) error {
	w := cfg.weight()
	if _, ok := g.AddEdge(u, v, w); !ok {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g) refused: %w", method, u, v, w, ErrConstructFailed)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids, i ascending then j ascending.
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(g *core.Graph, cfg builderConfig, method string, ids []core.VertexID) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// lineLayout places n points on a horizontal line starting at the origin.
func lineLayout(cfg builderConfig, n int) []r2.Vec {
	pos := make([]r2.Vec, n)
	for i := range pos {
		pos[i] = r2.Add(cfg.origin, r2.Vec{X: float64(i) * cfg.spacing})
	}

	return pos
}

// circleLayout places n points evenly on a circle around the origin, with
// adjacent points cfg.spacing apart along the circumference. Point 0 sits on
// the positive X axis; the rest follow counter-clockwise.
func circleLayout(cfg builderConfig, n int) []r2.Vec {
	pos := make([]r2.Vec, n)
	if n == 0 {
		return pos
	}
	if n == 1 {
		pos[0] = cfg.origin
		return pos
	}
	radius := cfg.spacing * float64(n) / (2 * math.Pi)
	for i := range pos {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = r2.Add(cfg.origin, r2.Scale(radius, r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}))
	}

	return pos
}

// gridLayout places rows×cols points row-major: index r*cols+c sits at
// origin + (c, r)·spacing.
func gridLayout(cfg builderConfig, rows, cols int) []r2.Vec {
	pos := make([]r2.Vec, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos = append(pos, r2.Add(cfg.origin, r2.Scale(cfg.spacing, r2.Vec{X: float64(c), Y: float64(r)})))
		}
	}

	return pos
}
