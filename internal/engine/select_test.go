package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/fkramer/rps-advisor/internal/dirichlet"
	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/simplex"
)

// flatSlice builds an all-zero slice with NaN over the invalid region.
func flatSlice(g *simplex.Grid) []float64 {
	s := make([]float64, g.Cells())
	for idx := range s {
		if !g.Valid(idx) {
			s[idx] = math.NaN()
		}
	}
	return s
}

func TestSelectMoveDeltaSpike(t *testing.T) {
	n := 5
	g := simplex.Build(n)

	cases := []struct {
		row, col int
		want     game.Move
	}{
		{0, 3, game.Rock},     // (0.75, 0, 0.25) — u dominates
		{3, 0, game.Paper},    // (0, 0.75, 0.25) — v dominates
		{0, 0, game.Scissors}, // (0, 0, 1) — w dominates
	}
	for _, c := range cases {
		slice := flatSlice(g)
		slice[c.row*n+c.col] = 42.0
		got, err := SelectMove(g, slice)
		if err != nil {
			t.Fatalf("SelectMove: %v", err)
		}
		if got != c.want {
			t.Errorf("spike at (%d,%d): got %s, want %s", c.row, c.col, got, c.want)
		}
	}
}

func TestSelectMoveRowMajorTieBreak(t *testing.T) {
	n := 5
	g := simplex.Build(n)
	slice := flatSlice(g)
	// Equal maxima at (0,3) → rock and (3,0) → paper; row-major scan must
	// keep the first.
	slice[0*n+3] = 7.0
	slice[3*n+0] = 7.0

	got, err := SelectMove(g, slice)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if got != game.Rock {
		t.Errorf("tie-break picked %s, want rock", got)
	}
}

func TestSelectMoveIgnoresNonFinite(t *testing.T) {
	n := 5
	g := simplex.Build(n)
	slice := flatSlice(g)
	slice[0*n+4] = math.Inf(1) // singular boundary cell
	slice[1*n+1] = 3.0         // (0.25, 0.25, 0.5) — finite maximum

	got, err := SelectMove(g, slice)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if got != game.Scissors {
		t.Errorf("got %s, want scissors from the finite maximum", got)
	}
}

func TestSelectMoveAllNonFinite(t *testing.T) {
	g := simplex.Build(4)
	slice := make([]float64, g.Cells())
	for idx := range slice {
		slice[idx] = math.NaN()
	}
	_, err := SelectMove(g, slice)
	if !errors.Is(err, ErrNoFiniteCell) {
		t.Fatalf("expected ErrNoFiniteCell, got %v", err)
	}
}

func TestMAPConcentratesTowardCentroid(t *testing.T) {
	// Scaling alpha while holding the (2,1,1) ratios fixed increases the
	// concentration: the MAP cell's distance from the simplex centroid must
	// be non-increasing in the scale.
	g := simplex.Build(DefaultGridSize)
	prev := math.Inf(1)
	for _, k := range []float64{1, 2, 4, 8} {
		slice := dirichlet.Evaluate(g, [3]float64{2 * k, k, k})
		cell, err := MAPCell(g, slice)
		if err != nil {
			t.Fatalf("scale %g: %v", k, err)
		}
		u, v, w := g.Coords(cell)
		d := math.Sqrt((u-1.0/3)*(u-1.0/3) + (v-1.0/3)*(v-1.0/3) + (w-1.0/3)*(w-1.0/3))
		if d > prev {
			t.Fatalf("scale %g: mode distance %g grew past %g", k, d, prev)
		}
		prev = d
	}
}
