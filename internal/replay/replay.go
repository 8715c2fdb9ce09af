// Package replay re-runs recorded advisory sessions through a fresh engine
// and checks that recommendations and alpha vectors reproduce. The engine is
// deterministic given its inputs, so any divergence means the recorded data
// and the code no longer agree.
package replay

// #region imports
import (
	"fmt"

	"github.com/fkramer/rps-advisor/internal/engine"
	"github.com/fkramer/rps-advisor/internal/game"
)

// #endregion

// #region types

// RoundOutcome captures what one replayed round produced.
type RoundOutcome struct {
	Round       int
	Observed    game.Move
	Applied     bool
	Alpha       engine.Alpha
	Recommended game.Move // recommendation after the round
}

// Result is the outcome of replaying a full session.
type Result struct {
	SeedAlpha           engine.Alpha
	FirstRecommendation game.Move
	Rounds              []RoundOutcome
}

// #endregion types

// #region run

// Run seeds a fresh session from the historical pairs and feeds it the
// observed moves in order. The round budget is the historical non-draw
// count, exactly as the interactive loop sizes it.
func Run(cfg engine.Config, pairs [][2]game.Move, observed []game.Move) (Result, error) {
	counts, _ := game.Aggregate(pairs)

	s, err := engine.NewSession(cfg, counts.Observation(), counts.Total())
	if err != nil {
		return Result{}, fmt.Errorf("seed session: %w", err)
	}

	res := Result{
		SeedAlpha:           s.Alpha(),
		FirstRecommendation: s.Recommendation(),
		Rounds:              make([]RoundOutcome, 0, len(observed)),
	}

	for i, move := range observed {
		rr, err := s.Observe(move)
		if err != nil {
			return Result{}, fmt.Errorf("round %d: %w", i+1, err)
		}
		res.Rounds = append(res.Rounds, RoundOutcome{
			Round:       rr.Round,
			Observed:    move,
			Applied:     rr.Applied,
			Alpha:       rr.Alpha,
			Recommended: rr.Recommended,
		})
	}
	return res, nil
}

// #endregion run

// #region verify

// ExpectedRound is the recorded outcome a replayed round must match.
type ExpectedRound struct {
	Recommended int        `json:"recommended"`
	Applied     bool       `json:"applied"`
	Alphas      [3]float64 `json:"alphas"`
}

// Verify compares a replay result against expectations and returns one
// human-readable divergence per mismatch.
func Verify(expected []ExpectedRound, res Result) []string {
	var divergences []string
	if len(expected) != len(res.Rounds) {
		divergences = append(divergences,
			fmt.Sprintf("round count: replayed %d, expected %d", len(res.Rounds), len(expected)))
	}
	n := len(expected)
	if len(res.Rounds) < n {
		n = len(res.Rounds)
	}
	for i := 0; i < n; i++ {
		want, got := expected[i], res.Rounds[i]
		if int(got.Recommended) != want.Recommended {
			divergences = append(divergences,
				fmt.Sprintf("round %d: recommended %s, expected %s",
					got.Round, got.Recommended, game.Move(want.Recommended)))
		}
		if got.Applied != want.Applied {
			divergences = append(divergences,
				fmt.Sprintf("round %d: applied=%v, expected %v", got.Round, got.Applied, want.Applied))
		}
		if [3]float64(got.Alpha) != want.Alphas {
			divergences = append(divergences,
				fmt.Sprintf("round %d: alphas %v, expected %v", got.Round, got.Alpha, want.Alphas))
		}
	}
	return divergences
}

// #endregion verify
