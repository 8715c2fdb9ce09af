package game

import "testing"

func TestWinnerCyclic(t *testing.T) {
	cases := []struct {
		a, b   Move
		winner Move
	}{
		{Rock, Paper, Paper},
		{Paper, Rock, Paper},
		{Paper, Scissors, Scissors},
		{Scissors, Paper, Scissors},
		{Scissors, Rock, Rock},
		{Rock, Scissors, Rock},
	}
	for _, c := range cases {
		w, ok := Winner(c.a, c.b)
		if !ok {
			t.Fatalf("Winner(%s, %s): unexpected draw", c.a, c.b)
		}
		if w != c.winner {
			t.Errorf("Winner(%s, %s) = %s, want %s", c.a, c.b, w, c.winner)
		}
	}
}

func TestWinnerDrawIffEqual(t *testing.T) {
	for m := Rock; m <= Scissors; m++ {
		if _, ok := Winner(m, m); ok {
			t.Errorf("Winner(%s, %s): expected draw", m, m)
		}
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"0", Rock},
		{"1", Paper},
		{"2", Scissors},
		{"rock", Rock},
		{"Paper", Paper},
		{" scissors ", Scissors},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"3", "-1", "lizard", ""} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q): expected error", bad)
		}
	}
}

func TestAggregate(t *testing.T) {
	// human, computer pairs: paper beats rock etc.
	pairs := [][2]Move{
		{Rock, Scissors},     // rock wins, human
		{Rock, Scissors},     // rock wins, human
		{Scissors, Rock},     // rock wins, computer
		{Paper, Rock},        // paper wins, human
		{Rock, Rock},         // draw
		{Scissors, Scissors}, // draw
	}
	counts, tally := Aggregate(pairs)

	if got := (Counts{3, 1, 0}); counts != got {
		t.Fatalf("counts = %v, want %v", counts, got)
	}
	if counts.Total() != 4 {
		t.Errorf("Total = %d, want 4", counts.Total())
	}
	if tally.HumanWins != 3 || tally.ComputerWins != 1 || tally.Draws != 2 {
		t.Errorf("tally = %+v, want 3/1/2", tally)
	}

	obs := counts.Observation()
	if obs != [3]float64{3, 1, 0} {
		t.Errorf("observation = %v", obs)
	}
}
