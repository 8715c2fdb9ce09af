// Package dirichlet evaluates the three-parameter Dirichlet density over a
// discretized simplex grid.
package dirichlet

// #region imports
import (
	"math"

	"github.com/fkramer/rps-advisor/internal/simplex"
)

// #endregion

// #region evaluate

// Evaluate computes the Dirichlet density slice for the given concentration
// parameters over every valid grid cell:
//
//	density = Γ(Σα) / (Γ(α0)·Γ(α1)·Γ(α2)) · U^(α0-1) · V^(α1-1) · W^(α2-1)
//
// Invalid cells carry NaN regardless of what the arithmetic would produce.
// A zero coordinate raised to the zero exponent contributes 1 (math.Pow
// already follows the 0^0 = 1 convention); a zero coordinate raised to a
// negative exponent yields +Inf, which the move selector later ignores.
//
// The result is deterministic for given inputs. Negative alpha components are
// a caller contract violation.
func Evaluate(g *simplex.Grid, alpha [3]float64) []float64 {
	coef := normConst(alpha)

	e0 := alpha[0] - 1
	e1 := alpha[1] - 1
	e2 := alpha[2] - 1

	density := make([]float64, g.Cells())
	for idx := range density {
		if !g.Valid(idx) {
			density[idx] = math.NaN()
			continue
		}
		density[idx] = coef *
			math.Pow(g.U[idx], e0) *
			math.Pow(g.V[idx], e1) *
			math.Pow(g.W[idx], e2)
	}
	return density
}

// #endregion evaluate

// #region norm-const

// normConst computes the Dirichlet normalizing constant Γ(Σα)/ΠΓ(αk).
//
// With any αk = 0 the denominator diverges and the constant collapses to
// zero, which would wipe out the whole slice. The constant is uniform across
// a slice, so it cannot move the MAP cell: when it is zero or non-finite we
// fall back to 1 and return the unnormalized density instead.
func normConst(alpha [3]float64) float64 {
	num := math.Gamma(alpha[0] + alpha[1] + alpha[2])
	den := math.Gamma(alpha[0]) * math.Gamma(alpha[1]) * math.Gamma(alpha[2])
	coef := num / den
	if coef == 0 || math.IsInf(coef, 0) || math.IsNaN(coef) {
		return 1
	}
	return coef
}

// #endregion norm-const
