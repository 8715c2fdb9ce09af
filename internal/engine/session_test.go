package engine

import (
	"errors"
	"testing"

	"github.com/fkramer/rps-advisor/internal/game"
)

func newSeededSession(t *testing.T) *Session {
	t.Helper()
	// Historical winning-move counts rock=3, paper=1, scissors=0 over 4
	// non-draw rounds.
	s, err := NewSession(DefaultConfig(), [3]float64{3, 1, 0}, 4)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSeedRecommendation(t *testing.T) {
	s := newSeededSession(t)

	if s.Alpha() != (Alpha{3, 1, 0}) {
		t.Fatalf("seed alpha = %v", s.Alpha())
	}
	if s.Recommendation() != game.Rock {
		t.Fatalf("seed recommendation = %s, want rock", s.Recommendation())
	}
	if s.Updates() != 1 {
		t.Errorf("updates = %d, want 1 (seed only)", s.Updates())
	}
	if s.RoundsLeft() != 4 {
		t.Errorf("rounds left = %d, want 4", s.RoundsLeft())
	}
}

func TestObserveMismatchAppliesUpdate(t *testing.T) {
	s := newSeededSession(t)

	// Recommendation is rock; the computer played paper. Paper beats rock,
	// so the round's winning category is paper.
	res, err := s.Observe(game.Paper)
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if !res.Applied {
		t.Fatal("expected update to be applied")
	}
	if res.Winner != game.Paper {
		t.Errorf("winner = %s, want paper", res.Winner)
	}
	if res.Alpha != (Alpha{3, 2, 0}) {
		t.Errorf("alpha = %v, want (3,2,0)", res.Alpha)
	}
	// With alpha (3,2,0) the posterior mass concentrates near the
	// scissors-free edge of the simplex at (2/3, 1/3, 0); rock still
	// dominates the MAP point.
	if res.Recommended != game.Rock {
		t.Errorf("recommendation = %s, want rock", res.Recommended)
	}
	if s.Updates() != 2 {
		t.Errorf("updates = %d, want 2", s.Updates())
	}
	if res.RoundsLeft != 3 {
		t.Errorf("rounds left = %d, want 3", res.RoundsLeft)
	}
}

func TestObserveMAPNearDirichletMode(t *testing.T) {
	s := newSeededSession(t)
	if _, err := s.Observe(game.Paper); err != nil {
		t.Fatalf("Observe: %v", err)
	}

	// Cross-check the grid argmax against the directly computed mode of the
	// alpha (3,2,0) posterior, which sits on the w=0 edge at (2/3, 1/3, 0).
	slice := s.history.Latest()
	cell, err := MAPCell(s.grid, slice)
	if err != nil {
		t.Fatalf("MAPCell: %v", err)
	}
	u, v, w := s.grid.Coords(cell)

	gridStep := 1.0 / float64(DefaultGridSize-1)
	if diff := u - 2.0/3.0; diff > 2*gridStep || diff < -2*gridStep {
		t.Errorf("u = %g, want ≈ 2/3", u)
	}
	if diff := v - 1.0/3.0; diff > 2*gridStep || diff < -2*gridStep {
		t.Errorf("v = %g, want ≈ 1/3", v)
	}
	if w > 2*gridStep || w < 0 {
		t.Errorf("w = %g, want ≈ 0", w)
	}
}

func TestObserveDrawSkipsUpdate(t *testing.T) {
	s := newSeededSession(t)

	// The computer played exactly what the session recommended: treated as a
	// draw, no update.
	res, err := s.Observe(s.Recommendation())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if res.Applied {
		t.Fatal("draw round must not apply an update")
	}
	if res.Alpha != (Alpha{3, 1, 0}) {
		t.Errorf("alpha changed on draw: %v", res.Alpha)
	}
	if s.Updates() != 1 {
		t.Errorf("history grew on draw: %d slices", s.Updates())
	}
	// The round still consumes budget, matching the advisory loop.
	if res.RoundsLeft != 3 {
		t.Errorf("rounds left = %d, want 3", res.RoundsLeft)
	}
}

func TestRoundBudgetExhaustion(t *testing.T) {
	s, err := NewSession(Config{GridSize: 16}, [3]float64{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.Observe(game.Paper); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	_, err = s.Observe(game.Paper)
	if !errors.Is(err, ErrRoundBudgetExhausted) {
		t.Fatalf("expected ErrRoundBudgetExhausted, got %v", err)
	}
}

func TestSeedAggregateMatchesOneHotSum(t *testing.T) {
	// Folding the aggregate (2,1,0) in one seeding step or as three one-hot
	// updates gives the same final alpha; the intermediate slices differ.
	cfg := Config{GridSize: 8}
	agg, err := NewSession(cfg, [3]float64{2, 1, 0}, 0)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var alpha Alpha
	grid := agg.grid
	for _, w := range []game.Move{game.Rock, game.Rock, game.Paper} {
		alpha, _ = Step(grid, alpha, OneHot(w))
	}

	if alpha != agg.Alpha() {
		t.Fatalf("one-hot sum alpha = %v, aggregate seed alpha = %v", alpha, agg.Alpha())
	}
}

func TestHistoryCapacityMatchesBudget(t *testing.T) {
	s, err := NewSession(Config{GridSize: 16}, [3]float64{1, 1, 0}, 2)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if got := s.history.Cap(); got != 3 {
		t.Fatalf("history cap = %d, want rounds+1 = 3", got)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a, err := NewSession(Config{GridSize: 8}, [3]float64{1, 0, 0}, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSession(Config{GridSize: 8}, [3]float64{1, 0, 0}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("session IDs not unique: %q %q", a.ID(), b.ID())
	}
}
