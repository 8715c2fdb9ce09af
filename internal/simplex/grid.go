// Package simplex builds the discretized coordinate grid over the 2-simplex,
// the parameter space of a 3-category categorical distribution.
package simplex

// #region imports
import (
	"math"
)

// #endregion

// #region grid

// Grid holds three N×N coordinate matrices over [0,1]² in row-major order:
// U[i*N+j] = j/(N-1), V[i*N+j] = i/(N-1), and the derived W = 1-U-V rounded
// to 10 decimal places. A cell is valid iff its rounded W is non-negative;
// invalid cells carry NaN in all three matrices and are excluded from every
// density and argmax computation through the explicit validity mask.
//
// A Grid is immutable after Build.
type Grid struct {
	N int

	U []float64
	V []float64
	W []float64

	valid []bool
}

// #endregion grid

// #region build

// Build constructs the grid for an N×N discretization. N must be at least 2;
// smaller values are a caller contract violation.
func Build(n int) *Grid {
	g := &Grid{
		N:     n,
		U:     make([]float64, n*n),
		V:     make([]float64, n*n),
		W:     make([]float64, n*n),
		valid: make([]bool, n*n),
	}

	for i := 0; i < n; i++ {
		v := float64(i) / float64(n-1)
		for j := 0; j < n; j++ {
			u := float64(j) / float64(n-1)
			w := round10(1.0 - u - v)
			if w == 0 {
				w = 0 // normalize -0
			}

			idx := i*n + j
			if w < 0 {
				g.U[idx] = math.NaN()
				g.V[idx] = math.NaN()
				g.W[idx] = math.NaN()
				continue
			}
			g.U[idx] = u
			g.V[idx] = v
			g.W[idx] = w
			g.valid[idx] = true
		}
	}
	return g
}

// #endregion build

// #region accessors

// Valid reports whether the flat cell index lies inside the simplex triangle.
func (g *Grid) Valid(idx int) bool {
	return g.valid[idx]
}

// Cells returns the number of cells per slice (N²).
func (g *Grid) Cells() int {
	return g.N * g.N
}

// Coords returns the (u, v, w) coordinates at a flat cell index. The third
// coordinate is rederived as 1-u-v, matching how the selector reconstructs
// the simplex point from the argmax cell.
func (g *Grid) Coords(idx int) (u, v, w float64) {
	u = g.U[idx]
	v = g.V[idx]
	return u, v, 1.0 - u - v
}

// #endregion accessors

// #region rounding

// round10 rounds to 10 decimal places, absorbing the floating error from the
// 1-u-v subtraction so that boundary cells compare as exactly zero.
func round10(x float64) float64 {
	return math.Round(x*1e10) / 1e10
}

// #endregion rounding
