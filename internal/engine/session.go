// Package engine runs one advisory session: the discretized Dirichlet
// posterior over winning-move categories, updated one observed round at a
// time, and the MAP-based move recommendation derived from it.
package engine

// #region imports
import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/posterior"
	"github.com/fkramer/rps-advisor/internal/simplex"
)

// #endregion

// #region errors

// ErrRoundBudgetExhausted is returned by Observe once the session has
// consumed its fixed round budget. The posterior history is sized from that
// budget at construction, so further rounds have nowhere to go.
var ErrRoundBudgetExhausted = errors.New("engine: round budget exhausted")

// #endregion errors

// #region session

// Session owns the state of one advisory run: the immutable simplex grid,
// the alpha vector, the append-only posterior history, and the current
// recommendation. The alpha vector and history evolve in lockstep, one
// update per non-draw round, and are discarded with the session.
//
// A Session is strictly sequential: each Observe call fully applies its
// update before returning, and callers supply one round at a time.
type Session struct {
	id   string
	grid *simplex.Grid

	alpha   Alpha
	history *posterior.History

	rounds      int // fixed budget, set from the historical non-draw count
	played      int
	recommended game.Move
}

// #endregion session

// #region constructor

// NewSession seeds a session with the aggregate winning-move counts from
// historical records and a round budget (normally the historical non-draw
// count). The seeding update is update 0: it moves alpha from zero to the
// aggregate and produces the first posterior slice and recommendation.
//
// Seeding with the aggregate or replaying the equivalent one-hot sequence
// yields the same final alpha; only the intermediate slices differ.
func NewSession(cfg Config, seed [3]float64, rounds int) (*Session, error) {
	n := cfg.GridSize
	if n == 0 {
		n = DefaultGridSize
	}
	if n < 2 {
		return nil, fmt.Errorf("engine: grid size %d too small", n)
	}
	if rounds < 0 {
		return nil, fmt.Errorf("engine: negative round budget %d", rounds)
	}

	grid := simplex.Build(n)
	s := &Session{
		id:      uuid.New().String(),
		grid:    grid,
		history: posterior.NewHistory(grid.Cells(), rounds+1),
		rounds:  rounds,
	}

	alpha, slice := Step(grid, s.alpha, seed)
	if _, err := s.history.Append(slice); err != nil {
		return nil, fmt.Errorf("seed update: %w", err)
	}
	s.alpha = alpha

	rec, err := SelectMove(grid, slice)
	if err != nil {
		return nil, fmt.Errorf("seed selection: %w", err)
	}
	s.recommended = rec
	return s, nil
}

// #endregion constructor

// #region accessors

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Recommendation returns the move the model currently suggests playing.
func (s *Session) Recommendation() game.Move { return s.recommended }

// Alpha returns the current concentration vector.
func (s *Session) Alpha() Alpha { return s.alpha }

// RoundsLeft returns how many more rounds the session will accept.
func (s *Session) RoundsLeft() int { return s.rounds - s.played }

// Updates returns the number of posterior slices stored so far, the seeding
// update included.
func (s *Session) Updates() int { return s.history.Len() }

// #endregion accessors

// #region observe

// Observe consumes one round: the move the computer actually played.
//
// When the observed move equals the session's own previous recommendation
// the round is treated as a draw and the update is skipped — alpha and the
// history are left untouched. Note the comparison is against the
// recommendation, not against whatever the human really played; a round is
// therefore also skipped when the opponent merely coincides with the
// suggested move. This quirk is preserved deliberately (see DESIGN.md).
//
// Otherwise the round's winning category is classified, folded into alpha as
// a one-hot observation, the new posterior slice appended, and the
// recommendation recomputed from its MAP cell.
func (s *Session) Observe(observed game.Move) (RoundResult, error) {
	if s.RoundsLeft() == 0 {
		return RoundResult{}, ErrRoundBudgetExhausted
	}
	s.played++

	res := RoundResult{
		Round:       s.played,
		Alpha:       s.alpha,
		Recommended: s.recommended,
		RoundsLeft:  s.RoundsLeft(),
	}

	if observed == s.recommended {
		return res, nil
	}

	winner, _ := game.Winner(s.recommended, observed)
	alpha, slice := Step(s.grid, s.alpha, OneHot(winner))
	if _, err := s.history.Append(slice); err != nil {
		return RoundResult{}, fmt.Errorf("round %d: %w", s.played, err)
	}
	s.alpha = alpha

	rec, err := SelectMove(s.grid, slice)
	if err != nil {
		return RoundResult{}, fmt.Errorf("round %d: %w", s.played, err)
	}
	s.recommended = rec

	res.Applied = true
	res.Winner = winner
	res.Alpha = alpha
	res.Recommended = rec
	return res, nil
}

// #endregion observe
