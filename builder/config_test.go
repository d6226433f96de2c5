// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// TestLayoutOptions verifies spacing and origin defaults and overrides.
func TestLayoutOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	if cfgDefault.spacing != defaultSpacing {
		t.Errorf("default spacing: expected %g, got %g", defaultSpacing, cfgDefault.spacing)
	}
	if cfgDefault.origin != (r2.Vec{}) {
		t.Errorf("default origin: expected (0,0), got %v", cfgDefault.origin)
	}

	cfg := newBuilderConfig(WithSpacing(10), WithOrigin(3, 4), WithSpacing(20))
	if cfg.spacing != 20 {
		t.Errorf("last WithSpacing wins: expected 20, got %g", cfg.spacing)
	}
	if want := (r2.Vec{X: 3, Y: 4}); cfg.origin != want {
		t.Errorf("WithOrigin: expected %v, got %v", want, cfg.origin)
	}

	defer func() {
		if recover() == nil {
			t.Error("WithSpacing(0): expected panic")
		}
	}()
	WithSpacing(0)
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Int63(), cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Int63(), cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestWeightFnOptions verifies that weight function options apply correctly
// and override in order.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	const constVal = 9.0
	const min, max = 2.0, 4.0
	rng := rand.New(rand.NewSource(1))

	// 1. Default configuration: weightFn should be DefaultWeightFn
	if w := newBuilderConfig().weight(); w != DefaultEdgeWeight {
		t.Errorf("default weight: expected %g, got %g", DefaultEdgeWeight, w)
	}

	// 2. WithConstantWeight should override to constant value
	cfgConst := newBuilderConfig(WithConstantWeight(constVal))
	if w := cfgConst.weightFn(rng); w != constVal {
		t.Errorf("WithConstantWeight(rng): expected %g, got %g", constVal, w)
	}

	// 3. Override order: last option wins
	cfgOverride := newBuilderConfig(WithConstantWeight(1), WithUniformWeight(min, max))
	if val := cfgOverride.weightFn(rng); val < min || val >= max {
		t.Errorf("override order: expected uniform in [%g,%g), got %g", min, max, val)
	}

	// 4. weight() draws from the configured RNG
	cfgInt := newBuilderConfig(WithIntWeight(1, 3), WithSeed(5))
	for i := 0; i < 20; i++ {
		if w := cfgInt.weight(); w < 1 || w > 3 || w != float64(int(w)) {
			t.Fatalf("WithIntWeight: expected integer in [1,3], got %g", w)
		}
	}
}

// TestLayouts checks the geometry helpers.
func TestLayouts(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSpacing(10), WithOrigin(1, 1))

	line := lineLayout(cfg, 3)
	if want := []r2.Vec{{X: 1, Y: 1}, {X: 11, Y: 1}, {X: 21, Y: 1}}; !equalVecs(line, want) {
		t.Errorf("lineLayout: got %v, want %v", line, want)
	}

	grid := gridLayout(cfg, 2, 2)
	if want := []r2.Vec{{X: 1, Y: 1}, {X: 11, Y: 1}, {X: 1, Y: 11}, {X: 11, Y: 11}}; !equalVecs(grid, want) {
		t.Errorf("gridLayout: got %v, want %v", grid, want)
	}

	// Spokes sit exactly one spacing away from the origin.
	for _, p := range spokeLayout(cfg, 5) {
		if d := r2.Norm(r2.Sub(p, cfg.origin)); d < 10-1e-9 || d > 10+1e-9 {
			t.Errorf("spokeLayout: distance %g, want 10", d)
		}
	}
	if p := spokeLayout(cfg, 1)[0]; !equalVecs([]r2.Vec{p}, []r2.Vec{{X: 11, Y: 1}}) {
		t.Errorf("spokeLayout(1): got %v", p)
	}

	// Adjacent circle points are one spacing apart along the arc.
	ring := circleLayout(cfg, 8)
	if d := r2.Norm(r2.Sub(ring[0], cfg.origin)); d < 12.7 || d > 12.8 {
		t.Errorf("circleLayout radius: got %g, want 80/(2π)≈12.73", d)
	}
}

// equalVecs compares point slices with a small tolerance.
func equalVecs(a, b []r2.Vec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if r2.Norm(r2.Sub(a[i], b[i])) > 1e-9 {
			return false
		}
	}

	return true
}
