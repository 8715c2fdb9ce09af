package game

// #region counts

// Counts maps each move category to the number of historical rounds that
// category won. It seeds the Dirichlet alpha vector.
type Counts [3]int

// Total returns the number of non-draw rounds, which fixes the posterior
// history round budget.
func (c Counts) Total() int {
	return c[Rock] + c[Paper] + c[Scissors]
}

// Observation converts the counts to an alpha-space observation vector.
func (c Counts) Observation() [3]float64 {
	return [3]float64{float64(c[Rock]), float64(c[Paper]), float64(c[Scissors])}
}

// #endregion counts

// #region tally

// Tally is the observational win/loss/draw record from the human player's
// perspective. It is kept for reporting only and plays no role in the model.
type Tally struct {
	HumanWins    int
	ComputerWins int
	Draws        int
}

// #endregion tally

// #region aggregate

// Aggregate classifies historical (human, computer) move pairs into winning-move
// counts and a win/loss/draw tally. Draws contribute to the tally but not to the
// counts.
func Aggregate(pairs [][2]Move) (Counts, Tally) {
	var counts Counts
	var tally Tally
	for _, p := range pairs {
		winner, ok := Winner(p[0], p[1])
		if !ok {
			tally.Draws++
			continue
		}
		counts[winner]++
		if winner == p[0] {
			tally.HumanWins++
		} else {
			tally.ComputerWins++
		}
	}
	return counts, tally
}

// #endregion aggregate
