package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/records"
	"github.com/fkramer/rps-advisor/internal/roundlog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to rps_games.db")
	sessionID := flag.String("session", "", "show round-by-round detail for one session")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/rps_games.db [--session id] [--json]")
		os.Exit(2)
	}

	store, err := records.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rlog, err := roundlog.NewLog(store.DB())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open round log: %v\n", err)
		os.Exit(1)
	}

	if *sessionID != "" {
		err = runSessionMode(rlog, *sessionID, *jsonOut)
	} else {
		err = runSummaryMode(store, rlog, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region summary-mode

type summaryOutput struct {
	Games        int        `json:"games"`
	HumanWins    int        `json:"human_wins"`
	ComputerWins int        `json:"computer_wins"`
	Draws        int        `json:"draws"`
	SeedAlphas   [3]float64 `json:"seed_alphas"`
	Sessions     []string   `json:"sessions"`
}

func runSummaryMode(store *records.Store, rlog *roundlog.Log, jsonOut bool) error {
	pairs, err := store.AllPairs()
	if err != nil {
		return err
	}
	counts, tally := game.Aggregate(pairs)

	sessions, err := rlog.Sessions()
	if err != nil {
		return err
	}

	out := summaryOutput{
		Games:        len(pairs),
		HumanWins:    tally.HumanWins,
		ComputerWins: tally.ComputerWins,
		Draws:        tally.Draws,
		SeedAlphas:   counts.Observation(),
		Sessions:     sessions,
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Games:        %d\n", out.Games)
	fmt.Printf("You won:      %d\n", out.HumanWins)
	fmt.Printf("Computer won: %d\n", out.ComputerWins)
	fmt.Printf("Draws:        %d\n", out.Draws)
	fmt.Printf("Seed alphas:  %v\n", out.SeedAlphas)

	if len(out.Sessions) == 0 {
		fmt.Println("\nNo advisory sessions recorded.")
		return nil
	}
	fmt.Printf("\nSessions (most recent first):\n")
	for _, id := range out.Sessions {
		fmt.Printf("  %s\n", id)
	}
	return nil
}

// #endregion summary-mode

// #region session-mode

type roundRow struct {
	Round       int    `json:"round"`
	Recommended string `json:"recommended"`
	Observed    string `json:"observed"`
	Winner      string `json:"winner,omitempty"`
	Applied     bool   `json:"applied"`
	Alphas      string `json:"alphas"`
	CreatedAt   string `json:"created_at"`
}

func runSessionMode(rlog *roundlog.Log, sessionID string, jsonOut bool) error {
	entries, err := rlog.Rounds(sessionID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no rounds recorded for session %q", sessionID)
	}

	rows := make([]roundRow, len(entries))
	for i, e := range entries {
		r := roundRow{
			Round:       e.RoundNum,
			Recommended: game.Move(e.Recommended).String(),
			Observed:    game.Move(e.Observed).String(),
			Applied:     e.Applied,
			Alphas:      e.AlphasJSON,
			CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if e.Applied {
			r.Winner = game.Move(e.Winner).String()
		}
		rows[i] = r
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("Session %s, %d rounds:\n\n", sessionID, len(rows))
	fmt.Printf("%5s  %-11s  %-9s  %-9s  %-12s  %s\n",
		"Round", "Recommended", "Observed", "Winner", "Alphas", "Time")
	for _, r := range rows {
		winner := "—"
		if r.Winner != "" {
			winner = r.Winner
		}
		fmt.Printf("%5d  %-11s  %-9s  %-9s  %-12s  %s\n",
			r.Round, r.Recommended, r.Observed, winner, r.Alphas, r.CreatedAt)
	}
	return nil
}

// #endregion session-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
