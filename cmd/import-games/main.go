package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fkramer/rps-advisor/internal/game"
	"github.com/fkramer/rps-advisor/internal/records"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to rps_games.db")
	filePath := flag.String("file", "", "text file of game records, one 'human computer' pair per line")
	flag.Parse()

	if *dbPath == "" || *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: import-games --db path/to/rps_games.db --file games.txt")
		os.Exit(2)
	}

	pairs, skipped, err := parseGameFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", *filePath, err)
		os.Exit(1)
	}
	if len(pairs) == 0 {
		fmt.Fprintln(os.Stderr, "no game records found")
		os.Exit(1)
	}

	store, err := records.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.InsertPairs(pairs); err != nil {
		fmt.Fprintf(os.Stderr, "insert records: %v\n", err)
		os.Exit(1)
	}

	total, err := store.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "count records: %v\n", err)
		os.Exit(1)
	}

	counts, tally := game.Aggregate(pairs)
	fmt.Printf("Imported %d games (%d lines skipped).\n", len(pairs), skipped)
	fmt.Printf("  Winning-move counts: rock=%d paper=%d scissors=%d\n",
		counts[game.Rock], counts[game.Paper], counts[game.Scissors])
	fmt.Printf("  Outcomes: you %d, computer %d, draws %d\n",
		tally.HumanWins, tally.ComputerWins, tally.Draws)
	fmt.Printf("  Database now holds %d games.\n", total)
}

// #endregion main

// #region parse

// parseGameFile reads whitespace-separated human/computer move pairs, one
// per line. Blank lines and '#' comments are skipped silently; malformed
// lines are skipped with a warning and counted.
func parseGameFile(path string) ([][2]game.Move, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var pairs [][2]game.Move
	skipped := 0
	lineNum := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintf(os.Stderr, "line %d: want 2 fields, got %d, skipping\n", lineNum, len(fields))
			skipped++
			continue
		}
		human, err := game.ParseMove(fields[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v, skipping\n", lineNum, err)
			skipped++
			continue
		}
		computer, err := game.ParseMove(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v, skipping\n", lineNum, err)
			skipped++
			continue
		}
		pairs = append(pairs, [2]game.Move{human, computer})
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return pairs, skipped, nil
}

// #endregion parse
