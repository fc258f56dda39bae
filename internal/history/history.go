// Package history persists REPL session transcripts to a local SQLite
// database (SPEC_FULL.md DOMAIN STACK item 3). It is a host-adapter
// convenience: nothing it stores or reads ever feeds back into parsing
// or evaluation.
package history

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT    NOT NULL,
	line       TEXT    NOT NULL,
	outcome    TEXT    NOT NULL,
	is_error   INTEGER NOT NULL,
	recorded   TEXT    NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
)`

// Store is a handle on one REPL session's history. Each call to Open
// tags the Store it returns with its own random SessionID (DOMAIN
// STACK item 4), so rows from concurrent or successive sessions
// sharing one database file can still be told apart.
type Store struct {
	db        *sql.DB
	SessionID string
}

// Open opens (creating if necessary) the SQLite database at path and
// prepares its schema. Callers treat a non-nil error as non-fatal per
// SPEC_FULL.md §7: history is disabled with a warning, the REPL itself
// continues.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database %s: %w", path, err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing history schema: %w", err)
	}
	return &Store{db: db, SessionID: uuid.NewString()}, nil
}

// Record appends one REPL line and its outcome (the rendered result,
// or the diagnostic text on failure) to the history store.
func (s *Store) Record(line, outcome string, isError bool) error {
	_, err := s.db.Exec(
		`INSERT INTO history (session_id, line, outcome, is_error) VALUES (?, ?, ?, ?)`,
		s.SessionID, line, outcome, boolToInt(isError),
	)
	if err != nil {
		return fmt.Errorf("recording history entry: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
