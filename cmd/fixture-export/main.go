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
	dbPath := flag.String("db", "", "path to rps_games.db")
	sessionID := flag.String("session", "", "session to export (default: most recent)")
	gridSize := flag.Int("grid", 0, "simplex grid dimension the session ran with (0 = default)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/rps_games.db --out path/to/fixture.json [--session id] [--grid N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *sessionID, *gridSize, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath, sessionID string, gridSize int, outPath string) error {
	store, err := records.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	pairs, err := store.AllPairs()
	if err != nil {
		return fmt.Errorf("load game records: %w", err)
	}

	rlog, err := roundlog.NewLog(store.DB())
	if err != nil {
		return fmt.Errorf("open round log: %w", err)
	}

	if sessionID == "" {
		sessions, err := rlog.Sessions()
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			return fmt.Errorf("no sessions recorded")
		}
		sessionID = sessions[0]
	}

	entries, err := rlog.Rounds(sessionID)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no rounds recorded for session %q", sessionID)
	}

	fixture, err := buildFixture(pairs, entries, gridSize, sessionID)
	if err != nil {
		return err
	}
	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region build

// buildFixture re-runs the recorded session and emits the replayed outcomes
// as the fixture's expectations. The replay is checked against the recorded
// alphas first; a session that no longer reproduces is not worth exporting.
func buildFixture(pairs [][2]game.Move, entries []roundlog.RoundEntry, gridSize int, sessionID string) (*replay.Fixture, error) {
	observed := make([]game.Move, len(entries))
	observedInts := make([]int, len(entries))
	for i, e := range entries {
		m := game.Move(e.Observed)
		if !m.Valid() {
			return nil, fmt.Errorf("round %d: observed move %d out of range", e.RoundNum, e.Observed)
		}
		observed[i] = m
		observedInts[i] = e.Observed
	}

	cfg := engine.DefaultConfig()
	if gridSize != 0 {
		cfg.GridSize = gridSize
	}
	res, err := replay.Run(cfg, pairs, observed)
	if err != nil {
		return nil, fmt.Errorf("replay session: %w", err)
	}

	for i, e := range entries {
		var recorded [3]float64
		if err := json.Unmarshal([]byte(e.AlphasJSON), &recorded); err != nil {
			return nil, fmt.Errorf("round %d: parse alphas %q: %w", e.RoundNum, e.AlphasJSON, err)
		}
		got := res.Rounds[i]
		if [3]float64(got.Alpha) != recorded || got.Applied != e.Applied {
			return nil, fmt.Errorf("round %d does not reproduce (alphas %v vs recorded %v), refusing to export",
				e.RoundNum, got.Alpha, recorded)
		}
	}

	history := make([][2]int, len(pairs))
	for i, p := range pairs {
		history[i] = [2]int{int(p[0]), int(p[1])}
	}

	expected := make([]replay.ExpectedRound, len(res.Rounds))
	for i, r := range res.Rounds {
		expected[i] = replay.ExpectedRound{
			Recommended: int(r.Recommended),
			Applied:     r.Applied,
			Alphas:      [3]float64(r.Alpha),
		}
	}

	return &replay.Fixture{
		Description:   fmt.Sprintf("Session %s export: %d rounds over %d recorded games", sessionID, len(entries), len(pairs)),
		GridSize:      cfg.GridSize,
		History:       history,
		Observed:      observedInts,
		ExpectedFirst: int(res.FirstRecommendation),
		Expected:      expected,
	}, nil
}

// #endregion build

// #region output

func writeFixture(fixture *replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d rounds)\n", outPath, len(data), len(fixture.Observed))
	return nil
}

// #endregion output
