package roundlog

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRounds(t *testing.T) {
	db := newTestDB(t)
	l, err := NewLog(db)
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}

	entries := []RoundEntry{
		{SessionID: "s1", RoundNum: 1, Recommended: 0, Observed: 1, Winner: 1, Applied: true, AlphasJSON: "[3,2,0]"},
		{SessionID: "s1", RoundNum: 2, Recommended: 0, Observed: 0, Applied: false, AlphasJSON: "[3,2,0]"},
		{SessionID: "s2", RoundNum: 1, Recommended: 2, Observed: 0, Winner: 0, Applied: true, AlphasJSON: "[1,0,1]"},
	}
	for _, e := range entries {
		if err := l.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := l.Rounds("s1")
	if err != nil {
		t.Fatalf("Rounds: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rounds, want 2", len(got))
	}
	if !got[0].Applied || got[0].Winner != 1 {
		t.Errorf("round 1 = %+v", got[0])
	}
	if got[1].Applied {
		t.Errorf("round 2 should be a skipped draw: %+v", got[1])
	}
	if got[1].AlphasJSON != "[3,2,0]" {
		t.Errorf("alphas json = %q", got[1].AlphasJSON)
	}
}

func TestSessionsMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	l, err := NewLog(db)
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}

	for _, id := range []string{"a", "b", "a", "c"} {
		if err := l.Record(RoundEntry{SessionID: id, RoundNum: 1, AlphasJSON: "[0,0,0]"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	ids, err := l.Sessions()
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	want := []string{"c", "a", "b"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}
