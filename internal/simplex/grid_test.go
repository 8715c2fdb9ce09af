package simplex

import (
	"math"
	"testing"
)

func TestBuildCoordinatesSumToOne(t *testing.T) {
	for _, n := range []int{2, 5, 16, 128} {
		g := Build(n)
		for idx := 0; idx < g.Cells(); idx++ {
			if !g.Valid(idx) {
				continue
			}
			sum := g.U[idx] + g.V[idx] + g.W[idx]
			if math.Abs(sum-1.0) > 1e-10 {
				t.Fatalf("N=%d idx=%d: u+v+w = %.15f", n, idx, sum)
			}
		}
	}
}

func TestBuildInvalidRegion(t *testing.T) {
	n := 5
	g := Build(n)

	validCount := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			idx := i*n + j
			wantValid := i+j <= n-1
			if g.Valid(idx) != wantValid {
				t.Fatalf("cell (%d,%d): valid = %v, want %v", i, j, g.Valid(idx), wantValid)
			}
			if wantValid {
				validCount++
				continue
			}
			// Invalid cells carry the sentinel in all three matrices.
			if !math.IsNaN(g.U[idx]) || !math.IsNaN(g.V[idx]) || !math.IsNaN(g.W[idx]) {
				t.Fatalf("cell (%d,%d): expected NaN sentinel", i, j)
			}
		}
	}
	if validCount != 15 {
		t.Errorf("valid cells = %d, want 15", validCount)
	}
}

func TestBuildDiagonalIsExactZero(t *testing.T) {
	n := 128
	g := Build(n)
	// Cells on the u+v=1 diagonal must round to exactly zero, not a tiny
	// negative residue, and must not be negative zero.
	for i := 0; i < n; i++ {
		j := n - 1 - i
		idx := i*n + j
		if !g.Valid(idx) {
			t.Fatalf("diagonal cell (%d,%d) marked invalid", i, j)
		}
		w := g.W[idx]
		if w != 0 {
			t.Fatalf("diagonal cell (%d,%d): w = %g, want 0", i, j, w)
		}
		if math.Signbit(w) {
			t.Fatalf("diagonal cell (%d,%d): w is negative zero", i, j)
		}
	}
}

func TestBuildLayout(t *testing.T) {
	n := 4
	g := Build(n)

	// U varies along columns, V along rows.
	if g.U[0*n+2] != 2.0/3.0 {
		t.Errorf("U[0,2] = %g", g.U[0*n+2])
	}
	if g.V[2*n+0] != 2.0/3.0 {
		t.Errorf("V[2,0] = %g", g.V[2*n+0])
	}
	if g.U[0] != 0 || g.V[0] != 0 || g.W[0] != 1 {
		t.Errorf("origin cell = (%g,%g,%g), want (0,0,1)", g.U[0], g.V[0], g.W[0])
	}

	u, v, w := g.Coords(0*n + 3)
	if u != 1 || v != 0 || w != 0 {
		t.Errorf("Coords(0,3) = (%g,%g,%g), want (1,0,0)", u, v, w)
	}
}
