package game

// #region imports
import (
	"fmt"
	"strconv"
	"strings"
)

// #endregion

// #region move

// Move is one of the three playable move categories.
// The numeric values match the historical record format: 0=rock, 1=paper, 2=scissors.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

var moveNames = [3]string{"rock", "paper", "scissors"}

// String returns the lowercase move name, or "invalid" for out-of-range values.
func (m Move) String() string {
	if !m.Valid() {
		return "invalid"
	}
	return moveNames[m]
}

// Valid reports whether m is one of the three defined moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// #endregion move

// #region parse

// ParseMove accepts a move index ("0".."2") or a move name ("rock", "paper",
// "scissors"), case-insensitive.
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		m := Move(n)
		if !m.Valid() {
			return 0, fmt.Errorf("move index out of range: %d", n)
		}
		return m, nil
	}
	for i, name := range moveNames {
		if s == name {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("unknown move %q", s)
}

// #endregion parse

// #region beats

// Beats reports whether m defeats o under the cyclic relation:
// each move defeats its predecessor, so paper beats rock, scissors beats
// paper, and rock beats scissors.
func (m Move) Beats(o Move) bool {
	return (o+1)%3 == m
}

// #endregion beats

// #region winner

// Winner classifies a round. It returns the winning move category and true,
// or ok=false when the round is a draw (the moves are equal).
//
// The returned Move is the value of the winning move, not which player
// played it: the model's categories are "rock wins this round", "paper wins
// this round", "scissors wins this round".
func Winner(a, b Move) (Move, bool) {
	if a == b {
		return 0, false
	}
	if b.Beats(a) {
		return b, true
	}
	return a, true
}

// #endregion winner
