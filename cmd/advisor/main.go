package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fkramer/rps-advisor/internal/engine"
	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/records"
	"github.com/fkramer/rps-advisor/internal/remote"
	"github.com/fkramer/rps-advisor/internal/roundlog"
)

const movePrompt = "What did the computer play? 0 = rock, 1 = paper, 2 = scissors: "

// #region main
func main() {
	remoteAddr := flag.String("remote", "", "advisor server address (empty = run the engine locally)")
	gridSize := flag.Int("grid", 0, "simplex grid dimension (0 = default)")
	flag.Parse()

	dbPath := envOr("RPS_DB", "rps_games.db")

	if *remoteAddr != "" {
		if err := runRemote(*remoteAddr, *gridSize); err != nil {
			log.Fatalf("remote session: %v", err)
		}
		return
	}
	if err := runLocal(dbPath, *gridSize); err != nil {
		log.Fatalf("local session: %v", err)
	}
}

// #endregion main

// #region local
func runLocal(dbPath string, gridSize int) error {
	store, err := records.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	pairs, err := store.AllPairs()
	if err != nil {
		return fmt.Errorf("load game records: %w", err)
	}
	counts, tally := game.Aggregate(pairs)
	fmt.Printf("Loaded %d recorded games: you won %d, the computer won %d, %d draws.\n",
		len(pairs), tally.HumanWins, tally.ComputerWins, tally.Draws)

	cfg := engine.DefaultConfig()
	if gridSize != 0 {
		cfg.GridSize = gridSize
	}
	sess, err := engine.NewSession(cfg, counts.Observation(), counts.Total())
	if err != nil {
		return fmt.Errorf("seed session: %w", err)
	}

	rlog, err := roundlog.NewLog(store.DB())
	if err != nil {
		return fmt.Errorf("init round log: %w", err)
	}

	fmt.Printf("Session %s ready.\n", sess.ID())
	fmt.Printf("%d games left. alphas=%v\n", sess.RoundsLeft(), sess.Alpha())
	fmt.Printf("You should play %s.\n", sess.Recommendation())

	scanner := bufio.NewScanner(os.Stdin)
	for sess.RoundsLeft() > 0 {
		recommended := sess.Recommendation()

		observed, ok := readMove(scanner)
		if !ok {
			break
		}

		rr, err := sess.Observe(observed)
		if err != nil {
			if errors.Is(err, engine.ErrRoundBudgetExhausted) {
				break
			}
			return fmt.Errorf("observe: %w", err)
		}

		alphasJSON, _ := json.Marshal(rr.Alpha)
		if err := rlog.Record(roundlog.RoundEntry{
			SessionID:   sess.ID(),
			RoundNum:    rr.Round,
			Recommended: int(recommended),
			Observed:    int(observed),
			Winner:      int(rr.Winner),
			Applied:     rr.Applied,
			AlphasJSON:  string(alphasJSON),
			CreatedAt:   time.Now().UTC(),
		}); err != nil {
			log.Printf("round log error: %v", err)
		}

		if !rr.Applied {
			fmt.Println("Draw, nothing to learn.")
		}
		fmt.Printf("%d games left. alphas=%v\n", sess.RoundsLeft(), rr.Alpha)
		fmt.Printf("You should play %s.\n", rr.Recommended)
	}

	fmt.Println("Session over.")
	return nil
}

// #endregion local

// #region remote
func runRemote(addr string, gridSize int) error {
	client, err := remote.NewClient(addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", addr, err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	view, err := client.StartSession(ctx, gridSize)
	cancel()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	fmt.Printf("Session %s ready (server %s).\n", view.SessionID, addr)
	fmt.Printf("%d games left. alphas=%v\n", view.RoundsLeft, view.Alphas)
	fmt.Printf("You should play %s.\n", view.Recommended)

	scanner := bufio.NewScanner(os.Stdin)
	for view.RoundsLeft > 0 {
		observed, ok := readMove(scanner)
		if !ok {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		next, err := client.ReportMove(ctx, view.SessionID, observed)
		cancel()
		if err != nil {
			return fmt.Errorf("report move: %w", err)
		}
		view = next

		fmt.Printf("%d games left. alphas=%v\n", view.RoundsLeft, view.Alphas)
		fmt.Printf("You should play %s.\n", view.Recommended)
	}

	fmt.Println("Session over.")
	return nil
}

// #endregion remote

// #region helpers

// readMove prompts until it gets a valid move. The second return is false on
// EOF or an explicit quit.
func readMove(scanner *bufio.Scanner) (game.Move, bool) {
	for {
		fmt.Print(movePrompt)
		if !scanner.Scan() {
			return 0, false
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return 0, false
		}
		m, err := game.ParseMove(line)
		if err != nil {
			fmt.Printf("invalid move %q, try again\n", line)
			continue
		}
		return m, true
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
