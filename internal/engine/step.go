package engine

// #region imports
import (
	"github.com/fkramer/rps-advisor/internal/dirichlet"
	"github.com/fkramer/rps-advisor/internal/simplex"
)

// #endregion

// #region step

// Step is the pure conjugate Bayesian transition: it folds the observation
// into the alpha vector and evaluates the resulting posterior density slice
// over the grid. It does not touch session state, so a sequence of updates
// can be audited or replayed by chaining Step calls.
func Step(g *simplex.Grid, alpha Alpha, obs [3]float64) (Alpha, []float64) {
	next := alpha.Add(obs)
	slice := dirichlet.Evaluate(g, [3]float64(next))
	return next, slice
}

// #endregion step
