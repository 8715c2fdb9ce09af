package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fkramer/rps-advisor/internal/engine"
	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/records"
	"github.com/fkramer/rps-advisor/internal/replay"
	"github.com/fkramer/rps-advisor/internal/roundlog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to rps_games.db (DB mode)")
	sessionID := flag.String("session", "", "replay a single session (DB mode)")
	gridSize := flag.Int("grid", 0, "simplex grid dimension the sessions ran with (0 = default)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/rps_games.db [--session id] [--grid N]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *sessionID, *gridSize)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

func runDBMode(dbPath, sessionFilter string, gridSize int) int {
	store, err := records.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	pairs, err := store.AllPairs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load game records: %v\n", err)
		return 2
	}

	rlog, err := roundlog.NewLog(store.DB())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open round log: %v\n", err)
		return 2
	}

	var sessions []string
	if sessionFilter != "" {
		sessions = []string{sessionFilter}
	} else {
		sessions, err = rlog.Sessions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "list sessions: %v\n", err)
			return 2
		}
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions recorded")
		return 2
	}

	cfg := engine.DefaultConfig()
	if gridSize != 0 {
		cfg.GridSize = gridSize
	}

	diverging := 0
	for _, id := range sessions {
		entries, err := rlog.Rounds(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "session %s: %v\n", id, err)
			return 2
		}
		if len(entries) == 0 {
			fmt.Printf("session %s: no rounds recorded, skipping\n", id)
			continue
		}

		div, err := replaySession(cfg, pairs, entries)
		if err != nil {
			fmt.Fprintf(os.Stderr, "session %s: %v\n", id, err)
			return 2
		}
		if len(div) == 0 {
			fmt.Printf("session %s: OK (%d rounds)\n", id, len(entries))
			continue
		}
		diverging++
		fmt.Printf("session %s: DIVERGED\n", id)
		for _, d := range div {
			fmt.Printf("  %s\n", d)
		}
	}

	fmt.Printf("\nSummary: %d sessions, %d diverge\n", len(sessions), diverging)
	if diverging > 0 {
		return 1
	}
	return 0
}

// replaySession re-runs one recorded session and compares it round by round.
// The log stores each round's pre-round recommendation, so round i's replayed
// recommendation is checked against round i+1's recorded one, and the seed
// recommendation against round 1's.
func replaySession(cfg engine.Config, pairs [][2]game.Move, entries []roundlog.RoundEntry) ([]string, error) {
	observed := make([]game.Move, len(entries))
	for i, e := range entries {
		m := game.Move(e.Observed)
		if !m.Valid() {
			return nil, fmt.Errorf("round %d: observed move %d out of range", e.RoundNum, e.Observed)
		}
		observed[i] = m
	}

	res, err := replay.Run(cfg, pairs, observed)
	if err != nil {
		return nil, err
	}

	var div []string
	if int(res.FirstRecommendation) != entries[0].Recommended {
		div = append(div, fmt.Sprintf("seed recommendation: %s, recorded %s",
			res.FirstRecommendation, game.Move(entries[0].Recommended)))
	}
	for i, e := range entries {
		got := res.Rounds[i]

		var wantAlphas [3]float64
		if err := json.Unmarshal([]byte(e.AlphasJSON), &wantAlphas); err != nil {
			return nil, fmt.Errorf("round %d: parse alphas %q: %w", e.RoundNum, e.AlphasJSON, err)
		}
		if [3]float64(got.Alpha) != wantAlphas {
			div = append(div, fmt.Sprintf("round %d: alphas %v, recorded %v", e.RoundNum, got.Alpha, wantAlphas))
		}
		if got.Applied != e.Applied {
			div = append(div, fmt.Sprintf("round %d: applied=%v, recorded %v", e.RoundNum, got.Applied, e.Applied))
		}
		if i+1 < len(entries) {
			if int(got.Recommended) != entries[i+1].Recommended {
				div = append(div, fmt.Sprintf("round %d: recommended %s, recorded %s",
					e.RoundNum, got.Recommended, game.Move(entries[i+1].Recommended)))
			}
		}
	}
	return div, nil
}

// #endregion db-mode

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	div, err := replay.RunFixture(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run fixture: %v\n", err)
		return 2
	}

	if len(div) == 0 {
		fmt.Printf("fixture %s: OK (%d rounds)\n", path, len(f.Expected))
		return 0
	}
	fmt.Printf("fixture %s: DIVERGED\n", path)
	for _, d := range div {
		fmt.Printf("  %s\n", d)
	}
	return 1
}

// #endregion fixture-mode
