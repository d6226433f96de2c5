package prim_kruskal_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// algorithm is the common signature of Prim and Kruskal.
type algorithm func(*core.Graph) ([]core.Edge, float64, error)

// algorithms lists both implementations for table-driven checks.
var algorithms = map[string]algorithm{
	"Prim":    prim_kruskal.Prim,
	"Kruskal": prim_kruskal.Kruskal,
}

// buildTriangle constructs A(0,0) B(50,0) C(0,50) with
//
//	A-B (weight 1), B-C (weight 2), A-C (weight 3).
//
// The MSF consists of A-B and B-C with total weight 3.
func buildTriangle(t testing.TB) (*core.Graph, [3]core.EdgeID) {
	t.Helper()
	g := core.NewGraph()
	a := g.AddVertex(0, 0)
	b := g.AddVertex(50, 0)
	c := g.AddVertex(0, 50)

	var ids [3]core.EdgeID
	var ok bool
	ids[0], ok = g.AddEdge(a, b, 1)
	require.True(t, ok)
	ids[1], ok = g.AddEdge(b, c, 2)
	require.True(t, ok)
	ids[2], ok = g.AddEdge(a, c, 3)
	require.True(t, ok)

	return g, ids
}

// buildCLRS constructs the 9-vertex textbook graph whose MST weighs 37.
func buildCLRS(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	v := make([]core.VertexID, 9) // a..i
	for i := range v {
		v[i] = g.AddVertex(float64(i), 0)
	}
	const a, b, c, d, e, f, gg, h, i = 0, 1, 2, 3, 4, 5, 6, 7, 8
	edges := []struct {
		u, w int
		wt   float64
	}{
		{a, b, 4}, {a, h, 8}, {b, c, 8}, {b, h, 11}, {c, d, 7},
		{c, f, 4}, {c, i, 2}, {d, e, 9}, {d, f, 14}, {e, f, 10},
		{f, gg, 2}, {gg, h, 1}, {gg, i, 6}, {h, i, 7},
	}
	for _, x := range edges {
		_, ok := g.AddEdge(v[x.u], v[x.w], x.wt)
		require.True(t, ok)
	}

	return g
}

// buildRandomGraph creates n vertices and up to m random edges with small
// integer weights (many ties), then removes a few vertices so that handles are
// no longer contiguous. The rand source is seeded for reproducibility.
func buildRandomGraph(seed int64, n, m int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex(r.Float64()*100, r.Float64()*100)
	}
	for k := 0; k < m; k++ {
		u, v := ids[r.Intn(n)], ids[r.Intn(n)]
		// Self-loops and duplicates are refused by AddEdge.
		g.AddEdge(u, v, float64(1+r.Intn(5)))
	}
	for k := 0; k < n/10; k++ {
		_ = g.RemoveVertex(ids[r.Intn(n)])
	}

	return g
}

// componentCount counts connected components with a plain DFS.
func componentCount(g *core.Graph) int {
	seen := make(map[core.VertexID]bool)
	count := 0
	for _, id := range g.VertexIDs() {
		if seen[id] {
			continue
		}
		count++
		stack := []core.VertexID{id}
		seen[id] = true
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nbrs, _ := g.Neighbors(top)
			for _, nb := range nbrs {
				if !seen[nb] {
					seen[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}

	return count
}

// weights extracts edge weights in result order.
func weights(edges []core.Edge) []float64 {
	out := make([]float64, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Weight)
	}

	return out
}

// TestNilGraph verifies that both algorithms and Run reject a nil graph.
func TestNilGraph(t *testing.T) {
	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			edges, total, err := alg(nil)
			assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
			assert.Nil(t, edges)
			assert.Zero(t, total)
		})
	}
	_, err := prim_kruskal.Run(nil, prim_kruskal.StrategyPrim)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
}

// TestTriangle checks that both algorithms pick the 1 and 2 edges and drop the 3 edge.
func TestTriangle(t *testing.T) {
	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			g, ids := buildTriangle(t)
			edges, total, err := alg(g)
			require.NoError(t, err)
			assert.Len(t, edges, 2)
			assert.InDelta(t, 3.0, total, 1e-12)
			assert.ElementsMatch(t, []float64{1, 2}, weights(edges))
			for _, e := range edges {
				assert.NotEqual(t, ids[2], e.ID, "the weight-3 edge must be excluded")
			}
		})
	}
}

// TestTwoDisjointPairs checks that each component contributes exactly one edge.
func TestTwoDisjointPairs(t *testing.T) {
	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			g := core.NewGraph()
			a, b := g.AddVertex(0, 0), g.AddVertex(10, 0)
			c, d := g.AddVertex(100, 100), g.AddVertex(110, 100)
			ab, _ := g.AddEdge(a, b, 1)
			cd, _ := g.AddEdge(c, d, 1)

			edges, total, err := alg(g)
			require.NoError(t, err)
			require.Len(t, edges, 2)
			assert.InDelta(t, 2.0, total, 1e-12)
			got := []core.EdgeID{edges[0].ID, edges[1].ID}
			assert.ElementsMatch(t, []core.EdgeID{ab, cd}, got)
		})
	}
}

// TestEmptyAndIsolated covers the empty graph and a single isolated vertex.
func TestEmptyAndIsolated(t *testing.T) {
	for name, alg := range algorithms {
		t.Run(name+"/Empty", func(t *testing.T) {
			edges, total, err := alg(core.NewGraph())
			require.NoError(t, err)
			assert.NotNil(t, edges)
			assert.Empty(t, edges)
			assert.Zero(t, total)
		})
		t.Run(name+"/Isolated", func(t *testing.T) {
			g := core.NewGraph()
			g.AddVertex(5, 5)
			edges, total, err := alg(g)
			require.NoError(t, err)
			assert.Empty(t, edges)
			assert.Zero(t, total)
		})
		t.Run(name+"/VerticesNoEdges", func(t *testing.T) {
			g := core.NewGraph()
			for i := 0; i < 4; i++ {
				g.AddVertex(float64(i), 0)
			}
			edges, _, err := alg(g)
			require.NoError(t, err)
			assert.Empty(t, edges)
		})
	}
}

// TestReversedDuplicateDoesNotChangeForest verifies that a refused reversed
// duplicate leaves the forest untouched.
func TestReversedDuplicateDoesNotChangeForest(t *testing.T) {
	g, _ := buildTriangle(t)
	vs := g.VertexIDs()
	_, ok := g.AddEdge(vs[1], vs[0], 0.5)
	require.False(t, ok, "reversed duplicate must be rejected")

	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			_, total, err := alg(g)
			require.NoError(t, err)
			assert.InDelta(t, 3.0, total, 1e-12)
		})
	}
}

// TestCLRS checks the classic textbook example.
func TestCLRS(t *testing.T) {
	g := buildCLRS(t)
	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			edges, total, err := alg(g)
			require.NoError(t, err)
			assert.Len(t, edges, 8)
			assert.InDelta(t, 37.0, total, 1e-12)
		})
	}
}

// TestKruskalOrderAndTies checks ascending selection order and that ties keep
// insertion order.
func TestKruskalOrderAndTies(t *testing.T) {
	g := core.NewGraph()
	a, b, c, d := g.AddVertex(0, 0), g.AddVertex(1, 0), g.AddVertex(2, 0), g.AddVertex(3, 0)
	cd, _ := g.AddEdge(c, d, 1)
	ab, _ := g.AddEdge(a, b, 1)
	bc, _ := g.AddEdge(b, c, 1)
	_, _ = g.AddEdge(a, d, 1)

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, total, 1e-12)
	require.Len(t, edges, 3)
	assert.Equal(t, []core.EdgeID{cd, ab, bc}, []core.EdgeID{edges[0].ID, edges[1].ID, edges[2].ID})
}

// TestPrimTieBreak checks the (weight, lo, hi) ordering on a 4-cycle of equal weights.
func TestPrimTieBreak(t *testing.T) {
	g := core.NewGraph()
	v0, v1, v2, v3 := g.AddVertex(0, 0), g.AddVertex(1, 0), g.AddVertex(1, 1), g.AddVertex(0, 1)
	// Insert in an order that differs from the tie-break order.
	_, _ = g.AddEdge(v2, v3, 1)
	e30, _ := g.AddEdge(v3, v0, 1)
	e12, _ := g.AddEdge(v1, v2, 1)
	e01, _ := g.AddEdge(v0, v1, 1)

	edges, _, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	// From v0 the frontier is {(0,1), (0,3)} → pick 0–1; then {(0,3), (1,2)} → 0–3;
	// then {(1,2), (2,3)} → 1–2.
	assert.Equal(t, []core.EdgeID{e01, e30, e12}, []core.EdgeID{edges[0].ID, edges[1].ID, edges[2].ID})
}

// TestForestSizeMatchesComponents checks |forest| == |V| − components on random graphs.
func TestForestSizeMatchesComponents(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := buildRandomGraph(seed, 40, 60)
		want := g.VertexCount() - componentCount(g)

		ke, kw, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		pe, pw, err := prim_kruskal.Prim(g)
		require.NoError(t, err)

		assert.Len(t, ke, want, "seed %d", seed)
		assert.Len(t, pe, len(ke), "seed %d", seed)
		assert.InDelta(t, kw, pw, 1e-9, "seed %d", seed)
	}
}

// TestIdempotence checks that repeated runs agree and Kruskal is identical run to run.
func TestIdempotence(t *testing.T) {
	g := buildRandomGraph(7, 50, 120)

	k1, w1, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	k2, w2, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Equal(t, w1, w2)

	p1, pw1, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	p2, pw2, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, pw1, pw2)
	assert.Equal(t, p1, p2)
}

// TestForestIsAcyclicSubset checks every forest edge exists in the graph and
// no edge closes a cycle.
func TestForestIsAcyclicSubset(t *testing.T) {
	g := buildRandomGraph(99, 60, 150)
	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			edges, _, err := alg(g)
			require.NoError(t, err)

			parent := make(map[core.VertexID]core.VertexID)
			var find func(core.VertexID) core.VertexID
			find = func(x core.VertexID) core.VertexID {
				p, ok := parent[x]
				if !ok || p == x {
					return x
				}
				r := find(p)
				parent[x] = r

				return r
			}
			for _, e := range edges {
				got, err := g.Edge(e.ID)
				require.NoError(t, err)
				assert.Equal(t, e, got)
				ru, rv := find(e.Source), find(e.Dest)
				require.NotEqual(t, ru, rv, "edge %v closes a cycle", e)
				parent[ru] = rv
			}
		})
	}
}

// TestRun covers strategy dispatch, Forest fields and the unknown strategy error.
func TestRun(t *testing.T) {
	g := buildCLRS(t)
	for _, s := range prim_kruskal.Strategies() {
		f, err := prim_kruskal.Run(g, s)
		require.NoError(t, err)
		assert.Equal(t, s, f.Strategy)
		assert.Equal(t, 8, f.Len())
		assert.Equal(t, 9, f.VertexCount)
		assert.Equal(t, 1, f.Components())
		assert.InDelta(t, 37.0, f.TotalWeight, 1e-12)
		for _, id := range f.EdgeIDs() {
			assert.True(t, f.Contains(id))
		}
		assert.False(t, f.Contains(core.NoEdge))
	}

	_, err := prim_kruskal.Run(g, prim_kruskal.Strategy("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownStrategy)
}

// recordingObserver captures every ObserveRun call.
type recordingObserver struct {
	calls []prim_kruskal.Strategy
	last  *prim_kruskal.Forest
}

func (r *recordingObserver) ObserveRun(s prim_kruskal.Strategy, f *prim_kruskal.Forest, _ time.Duration) {
	r.calls = append(r.calls, s)
	r.last = f
}

// TestRunObserver checks that the observer sees successful runs only.
func TestRunObserver(t *testing.T) {
	g, _ := buildTriangle(t)
	obs := &recordingObserver{}

	_, err := prim_kruskal.Run(g, prim_kruskal.StrategyKruskal, prim_kruskal.WithObserver(obs))
	require.NoError(t, err)
	_, err = prim_kruskal.Run(g, "nope", prim_kruskal.WithObserver(obs))
	require.Error(t, err)
	_, err = prim_kruskal.Run(g, prim_kruskal.StrategyPrim, prim_kruskal.WithObserver(nil))
	require.NoError(t, err)

	assert.Equal(t, []prim_kruskal.Strategy{prim_kruskal.StrategyKruskal}, obs.calls)
	require.NotNil(t, obs.last)
	assert.Equal(t, 2, obs.last.Len())
}

// TestParseStrategy covers case folding, whitespace and errors.
func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in      string
		want    prim_kruskal.Strategy
		wantErr bool
	}{
		{"prim", prim_kruskal.StrategyPrim, false},
		{" Kruskal ", prim_kruskal.StrategyKruskal, false},
		{"PRIM", prim_kruskal.StrategyPrim, false},
		{"dijkstra", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := prim_kruskal.ParseStrategy(tc.in)
		if tc.wantErr {
			assert.True(t, errors.Is(err, prim_kruskal.ErrUnknownStrategy), "input %q", tc.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, string(tc.want), got.String())
	}
}

// TestMutationBetweenRuns checks that a run reflects the graph at call time.
func TestMutationBetweenRuns(t *testing.T) {
	g, ids := buildTriangle(t)
	require.NoError(t, g.RemoveEdge(ids[0]))

	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			edges, total, err := alg(g)
			require.NoError(t, err)
			assert.Len(t, edges, 2)
			assert.InDelta(t, 5.0, total, 1e-12)
		})
	}
}
