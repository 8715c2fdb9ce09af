package engine

// #region imports
import (
	"github.com/fkramer/rps-advisor/internal/game"
)

// #endregion

// #region config

// DefaultGridSize is the simplex discretization used when none is configured.
// It trades grid resolution against O(N²) memory per posterior slice and
// argmax precision.
const DefaultGridSize = 128

// Config holds session construction parameters.
type Config struct {
	GridSize int // 0 = DefaultGridSize
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{GridSize: DefaultGridSize}
}

// #endregion config

// #region alpha

// Alpha is the Dirichlet concentration vector, one component per move
// category. It starts at zero and grows only by adding observation vectors.
type Alpha [3]float64

// Add returns the alpha vector with an observation folded in. Observations
// must be non-negative; a one-hot vector for a single round, the full
// aggregate count vector for the seeding update.
func (a Alpha) Add(obs [3]float64) Alpha {
	return Alpha{a[0] + obs[0], a[1] + obs[1], a[2] + obs[2]}
}

// OneHot returns the observation vector for a single observed winning
// category.
func OneHot(winner game.Move) [3]float64 {
	var obs [3]float64
	obs[winner] = 1
	return obs
}

// #endregion alpha

// #region round-result

// RoundResult reports what one observed round did to the session.
type RoundResult struct {
	Round       int       // 1-based round number within the session
	Applied     bool      // false when the round was skipped as a draw
	Winner      game.Move // winning category; meaningful only when Applied
	Alpha       Alpha
	Recommended game.Move
	RoundsLeft  int
}

// #endregion round-result
