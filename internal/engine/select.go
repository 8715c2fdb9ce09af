package engine

// #region imports
import (
	"errors"
	"math"

	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/simplex"
)

// #endregion

// #region errors

// ErrNoFiniteCell means every cell of a posterior slice was invalid or
// non-finite. The grid always contains a non-empty valid triangle, so this
// indicates broken grid construction rather than a recoverable condition.
var ErrNoFiniteCell = errors.New("engine: posterior slice has no finite valid cell")

// #endregion errors

// #region select-move

// SelectMove locates the MAP cell of a posterior slice and returns the move
// whose simplex coordinate dominates there.
//
// The argmax runs over finite valid cells only, in row-major order, keeping
// the first maximum encountered. Ties at floating-point resolution are
// possible near the simplex boundary, so the scan order is part of the
// contract: it makes recommendations reproducible across runs and replays.
func SelectMove(g *simplex.Grid, slice []float64) (game.Move, error) {
	best, err := MAPCell(g, slice)
	if err != nil {
		return 0, err
	}

	u, v, w := g.Coords(best)
	mu := [3]float64{u, v, w}
	m := game.Rock
	for k := game.Paper; k <= game.Scissors; k++ {
		if mu[k] > mu[m] {
			m = k
		}
	}
	return m, nil
}

// #endregion select-move

// #region map-cell

// MAPCell returns the flat index of the first finite maximum of the slice in
// row-major order, skipping invalid cells.
func MAPCell(g *simplex.Grid, slice []float64) (int, error) {
	best := -1
	var bestVal float64
	for idx, d := range slice {
		if !g.Valid(idx) || !finite(d) {
			continue
		}
		if best < 0 || d > bestVal {
			best = idx
			bestVal = d
		}
	}
	if best < 0 {
		return 0, ErrNoFiniteCell
	}
	return best, nil
}

// #endregion map-cell

// #region finite

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// #endregion finite
