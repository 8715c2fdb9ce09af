// Package records is the historical game record source: a SQLite store of
// (human move, computer move) pairs imported from past play.
package records

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fkramer/rps-advisor/internal/game"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS game_records (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	human_move     INTEGER NOT NULL CHECK (human_move BETWEEN 0 AND 2),
	computer_move  INTEGER NOT NULL CHECK (computer_move BETWEEN 0 AND 2),
	created_at     TEXT NOT NULL
);
`

// #endregion schema

// #region record

// GameRecord is one historical round as stored.
type GameRecord struct {
	ID           int64
	HumanMove    game.Move
	ComputerMove game.Move
	CreatedAt    time.Time
}

// #endregion record

// #region store-struct

// Store manages historical game records in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor

// DB returns the underlying *sql.DB for use by other packages (e.g. the
// round log).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region insert

// InsertPairs stores a batch of rounds in one transaction. Moves outside
// {0,1,2} are rejected; validation happens here, before anything reaches the
// estimation core.
func (s *Store) InsertPairs(pairs [][2]game.Move) error {
	for _, p := range pairs {
		if !p[0].Valid() || !p[1].Valid() {
			return fmt.Errorf("record (%d, %d) out of range", p[0], p[1])
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, p := range pairs {
		_, err := tx.Exec(
			`INSERT INTO game_records (human_move, computer_move, created_at)
			 VALUES (?, ?, ?)`,
			int(p[0]), int(p[1]), now,
		)
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	return tx.Commit()
}

// #endregion insert

// #region all-pairs

// AllPairs returns every stored round in insertion order.
func (s *Store) AllPairs() ([][2]game.Move, error) {
	rows, err := s.db.Query(
		`SELECT human_move, computer_move FROM game_records ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var pairs [][2]game.Move
	for rows.Next() {
		var h, c int
		if err := rows.Scan(&h, &c); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		pairs = append(pairs, [2]game.Move{game.Move(h), game.Move(c)})
	}
	return pairs, rows.Err()
}

// #endregion all-pairs

// #region count

// Count returns the number of stored rounds.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM game_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// #endregion count
