package dirichlet

import (
	"math"
	"testing"

	"github.com/fkramer/rps-advisor/internal/simplex"
)

func TestEvaluateUniform(t *testing.T) {
	// Alpha (1,1,1) is the uniform density over the simplex: every valid cell
	// carries the normalizing constant Γ(3) = 2, corners included (0^0 = 1).
	g := simplex.Build(5)
	d := Evaluate(g, [3]float64{1, 1, 1})

	for idx := range d {
		if !g.Valid(idx) {
			if !math.IsNaN(d[idx]) {
				t.Fatalf("idx %d: invalid cell not NaN", idx)
			}
			continue
		}
		if math.Abs(d[idx]-2.0) > 1e-12 {
			t.Fatalf("idx %d: density = %g, want 2", idx, d[idx])
		}
	}
}

func TestEvaluateLinearDensity(t *testing.T) {
	// Alpha (2,1,1): density = 6u. Peak at the u=1 corner, zero along u=0.
	n := 5
	g := simplex.Build(n)
	d := Evaluate(g, [3]float64{2, 1, 1})

	if got := d[0*n+4]; math.Abs(got-6.0) > 1e-12 {
		t.Errorf("density at (1,0,0) = %g, want 6", got)
	}
	if got := d[0*n+0]; got != 0 {
		t.Errorf("density at (0,0,1) = %g, want 0", got)
	}
	if got := d[4*n+0]; got != 0 {
		t.Errorf("density at (0,1,0) = %g, want 0", got)
	}
}

func TestEvaluateZeroAlphaFallsBackUnnormalized(t *testing.T) {
	// A zero alpha component makes Γ(0) diverge in the normalizing constant.
	// The evaluator then drops the constant, so the slice is the raw product
	// U^(α0-1)·V^(α1-1)·W^(α2-1) instead of collapsing to zero everywhere.
	n := 5
	g := simplex.Build(n)
	d := Evaluate(g, [3]float64{3, 1, 0})

	// Interior near-boundary cell (0,3): u=0.75, v=0, w=0.25 → u²/w = 2.25.
	if got := d[0*n+3]; math.Abs(got-2.25) > 1e-12 {
		t.Errorf("density at (0.75,0,0.25) = %g, want 2.25", got)
	}
	// On the w=0 boundary with u>0 the w^-1 term is singular.
	if got := d[0*n+4]; !math.IsInf(got, 1) {
		t.Errorf("density at (1,0,0) = %g, want +Inf", got)
	}
	// Along u=0 the u² term wins.
	if got := d[0*n+0]; got != 0 {
		t.Errorf("density at (0,0,1) = %g, want 0", got)
	}
}

func TestEvaluateSentinelPropagation(t *testing.T) {
	n := 5
	g := simplex.Build(n)
	// Alpha (1,1,1) would give 2 everywhere if the arithmetic ran on invalid
	// cells (NaN^0 = 1 under math.Pow); the mask must win.
	d := Evaluate(g, [3]float64{1, 1, 1})
	if !math.IsNaN(d[4*n+4]) {
		t.Fatalf("invalid corner cell = %g, want NaN", d[4*n+4])
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	g := simplex.Build(16)
	a := [3]float64{4, 2, 1}
	d1 := Evaluate(g, a)
	d2 := Evaluate(g, a)
	for idx := range d1 {
		same := d1[idx] == d2[idx] || (math.IsNaN(d1[idx]) && math.IsNaN(d2[idx]))
		if !same {
			t.Fatalf("idx %d: %g != %g", idx, d1[idx], d2[idx])
		}
	}
}
