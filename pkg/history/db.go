// Package history journals breakpoint transitions observed by the demo to a
// SQLite database and summarises how long each breakpoint stayed active.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

// Driver names registered by the two SQLite implementations.
const (
	DriverCGO  = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPure = "sqlite"  // modernc.org/sqlite
)

// DefaultDriver needs no C toolchain.
const DefaultDriver = DriverPure

// Journal handles transition persistence
type Journal struct {
	db     *sql.DB
	driver string
}

// DefaultPath returns ~/.config/rv/history.db, or "" when the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rv", "history.db")
}

// Open opens or creates the journal at the given path. An empty driver means
// DefaultDriver.
func Open(dbPath, driver string) (*Journal, error) {
	if driver == "" {
		driver = DefaultDriver
	}
	if driver != DriverCGO && driver != DriverPure {
		return nil, fmt.Errorf("unsupported sqlite driver %q", driver)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open(driver, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Both drivers serialise writes; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	j := &Journal{db: db, driver: driver}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return j, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	return j.db.Close()
}

// Driver returns the driver the journal was opened with.
func (j *Journal) Driver() string { return j.driver }

// Timestamps are stored as unix nanoseconds so both drivers agree on them.
func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		config_name TEXT NOT NULL,
		units TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		ended_at INTEGER,
		transitions INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS transitions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL REFERENCES sessions(id),
		from_name TEXT NOT NULL DEFAULT '',
		to_name TEXT NOT NULL,
		width REAL NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transitions_session ON transitions(session_id);
	`

	_, err := j.db.Exec(schema)
	return err
}

// StartSession creates a new session
func (j *Journal) StartSession(configName string, units model.Unit) (*model.Session, error) {
	now := time.Now()
	result, err := j.db.Exec(`
		INSERT INTO sessions (config_name, units, started_at)
		VALUES (?, ?, ?)
	`, configName, string(units), now.UnixNano())
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Session{
		ID:         id,
		ConfigName: configName,
		Units:      units,
		StartedAt:  now,
	}, nil
}

// Record appends a transition to the session and bumps its counter.
func (j *Journal) Record(s *model.Session, from, to string, width float64) (*model.Transition, error) {
	return j.RecordAt(s, from, to, width, time.Now())
}

// RecordAt is Record with an explicit timestamp.
func (j *Journal) RecordAt(s *model.Session, from, to string, width float64, at time.Time) (*model.Transition, error) {
	tx, err := j.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO transitions (session_id, from_name, to_name, width, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.ID, from, to, width, at.UnixNano())
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`UPDATE sessions SET transitions = transitions + 1 WHERE id = ?`, s.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.Transitions++
	return &model.Transition{
		ID:        id,
		SessionID: s.ID,
		From:      from,
		To:        to,
		Width:     width,
		CreatedAt: at,
	}, nil
}

// EndSession marks a session as finished
func (j *Journal) EndSession(s *model.Session) error {
	now := time.Now()
	s.EndedAt = &now
	_, err := j.db.Exec(`
		UPDATE sessions SET ended_at = ? WHERE id = ?
	`, now.UnixNano(), s.ID)
	return err
}

// Sessions returns every session, newest first.
func (j *Journal) Sessions() ([]model.Session, error) {
	rows, err := j.db.Query(`
		SELECT id, config_name, units, started_at, ended_at, transitions
		FROM sessions
		ORDER BY started_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var s model.Session
		var units string
		var started int64
		var ended sql.NullInt64
		if err := rows.Scan(&s.ID, &s.ConfigName, &units, &started, &ended, &s.Transitions); err != nil {
			return nil, err
		}
		s.Units = model.Unit(units)
		s.StartedAt = time.Unix(0, started)
		if ended.Valid {
			t := time.Unix(0, ended.Int64)
			s.EndedAt = &t
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Transitions returns the transitions of a session in order. A sessionID of
// 0 returns transitions of all sessions, grouped by session.
func (j *Journal) Transitions(sessionID int64) ([]model.Transition, error) {
	query := `
		SELECT id, session_id, from_name, to_name, width, created_at
		FROM transitions`
	var args []any
	if sessionID != 0 {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY session_id, created_at, id`

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transition
	for rows.Next() {
		var t model.Transition
		var created int64
		if err := rows.Scan(&t.ID, &t.SessionID, &t.From, &t.To, &t.Width, &created); err != nil {
			return nil, err
		}
		t.CreatedAt = time.Unix(0, created)
		out = append(out, t)
	}
	return out, rows.Err()
}
