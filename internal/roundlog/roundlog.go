// Package roundlog records each advisory round in SQLite so sessions can be
// inspected and deterministically replayed.
package roundlog

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS session_rounds (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id     TEXT NOT NULL,
	round_num      INTEGER NOT NULL,
	recommended    INTEGER NOT NULL,
	observed       INTEGER NOT NULL,
	winner         INTEGER,
	applied        INTEGER NOT NULL DEFAULT 0,
	alphas_json    TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_rounds_session
ON session_rounds(session_id, round_num);
`

// #endregion schema

// #region entry

// RoundEntry is a single row in session_rounds. Recommended is the move the
// session had suggested before the round; Observed is what the computer
// played. Winner is meaningful only when Applied.
type RoundEntry struct {
	SessionID   string
	RoundNum    int
	Recommended int
	Observed    int
	Winner      int
	Applied     bool
	AlphasJSON  string
	CreatedAt   time.Time
}

// #endregion entry

// #region log

// Log manages the session round log.
type Log struct {
	db *sql.DB
}

// NewLog initializes the session_rounds table on an existing database.
func NewLog(db *sql.DB) (*Log, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate round log: %w", err)
	}
	return &Log{db: db}, nil
}

// #endregion log

// #region record

// Record appends one round to the log.
func (l *Log) Record(e RoundEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	applied := 0
	if e.Applied {
		applied = 1
	}
	var winner interface{}
	if e.Applied {
		winner = e.Winner
	}
	_, err := l.db.Exec(
		`INSERT INTO session_rounds
		 (session_id, round_num, recommended, observed, winner, applied, alphas_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.RoundNum, e.Recommended, e.Observed, winner, applied,
		e.AlphasJSON, e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	return nil
}

// #endregion record

// #region rounds

// Rounds returns a session's rounds in order.
func (l *Log) Rounds(sessionID string) ([]RoundEntry, error) {
	rows, err := l.db.Query(
		`SELECT session_id, round_num, recommended, observed, winner, applied, alphas_json, created_at
		 FROM session_rounds WHERE session_id = ? ORDER BY round_num ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var winner sql.NullInt64
		var applied int
		var createdStr string
		if err := rows.Scan(&e.SessionID, &e.RoundNum, &e.Recommended, &e.Observed,
			&winner, &applied, &e.AlphasJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		e.Applied = applied != 0
		if winner.Valid {
			e.Winner = int(winner.Int64)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion rounds

// #region sessions

// Sessions returns the distinct session IDs in the log, most recent first.
func (l *Log) Sessions() ([]string, error) {
	rows, err := l.db.Query(
		`SELECT session_id FROM session_rounds GROUP BY session_id ORDER BY MAX(id) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// #endregion sessions
