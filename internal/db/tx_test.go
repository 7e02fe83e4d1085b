package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE entries (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func countEntries(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx_Commits(t *testing.T) {
	db := openTestDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		for _, name := range []string{"a", "b"} {
			if _, err := tx.Exec(`INSERT INTO entries (name) VALUES (?)`, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if got := countEntries(t, db); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO entries (name) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got := countEntries(t, db); got != 0 {
		t.Errorf("count = %d, want 0 after rollback", got)
	}
}

func TestNullString(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"", false},
		{"docs", true},
	}
	for _, tt := range tests {
		n := NullString(tt.in)
		if n.Valid != tt.valid {
			t.Errorf("NullString(%q).Valid = %v, want %v", tt.in, n.Valid, tt.valid)
		}
		if got := NullStringValue(n); got != tt.in {
			t.Errorf("round trip of %q = %q", tt.in, got)
		}
	}
	if got := NullStringValue(sql.NullString{String: "stale", Valid: false}); got != "" {
		t.Errorf("NullStringValue(invalid) = %q, want empty", got)
	}
}
