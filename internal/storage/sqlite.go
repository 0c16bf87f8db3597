// Package storage provides SQLite-based persistence for played sessions and their moves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-checkers/internal/core"
)

const timeLayout = "2006-01-02 15:04:05"

// ErrSessionEnded is returned when recording into a finished session.
var ErrSessionEnded = errors.New("storage: session already ended")

// Store manages the SQLite database connection for the move journal.
type Store struct {
	db *sql.DB
}

// SessionInfo summarizes one played session.
type SessionInfo struct {
	ID        int64
	Variant   string
	Moves     int
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is open or if it was never closed
}

// Finished reports whether the session was closed cleanly.
func (s SessionInfo) Finished() bool {
	return !s.EndedAt.IsZero()
}

// MoveEntry is one journaled move. Points hold (column, row) board coordinates.
type MoveEntry struct {
	Seq       int
	From      core.Point
	To        core.Point
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME
		);

		CREATE TABLE IF NOT EXISTS moves (
			session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			from_col INTEGER NOT NULL,
			from_row INTEGER NOT NULL,
			to_col INTEGER NOT NULL,
			to_row INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (session_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Session journals the moves of one game. It is safe for concurrent use.
type Session struct {
	store *Store
	id    int64

	mu    sync.Mutex
	seq   int
	ended bool
}

// StartSession opens a new session row for the given variant.
func (s *Store) StartSession(variant string) (*Session, error) {
	res, err := s.db.Exec("INSERT INTO sessions (variant) VALUES (?)", variant)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return &Session{store: s, id: id}, nil
}

// ID returns the session's row ID.
func (s *Session) ID() int64 {
	return s.id
}

// Moves returns how many moves were recorded so far.
func (s *Session) Moves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// RecordMove appends a move to the journal.
func (s *Session) RecordMove(from, to core.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return ErrSessionEnded
	}

	_, err := s.store.db.Exec(
		`INSERT INTO moves (session_id, seq, from_col, from_row, to_col, to_row)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.id, s.seq+1, from.X, from.Y, to.X, to.Y,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record move: %w", err)
	}

	s.seq++
	return nil
}

// End closes the session and stores its move count. Calling End twice is a no-op.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil
	}

	_, err := s.store.db.Exec(
		"UPDATE sessions SET moves = ?, ended_at = CURRENT_TIMESTAMP WHERE id = ?",
		s.seq, s.id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}

	s.ended = true
	return nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionInfo, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.variant, COUNT(m.seq), s.started_at, s.ended_at
		 FROM sessions s
		 LEFT JOIN moves m ON m.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var startedAt, endedAt any
		if err := rows.Scan(&info.ID, &info.Variant, &info.Moves, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.StartedAt = parseTime(startedAt)
		info.EndedAt = parseTime(endedAt)
		sessions = append(sessions, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionMoves retrieves the moves of one session in play order.
func (s *Store) SessionMoves(sessionID int64) ([]MoveEntry, error) {
	rows, err := s.db.Query(
		`SELECT seq, from_col, from_row, to_col, to_row, created_at
		 FROM moves
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveEntry
	for rows.Next() {
		var m MoveEntry
		var createdAt any
		if err := rows.Scan(&m.Seq, &m.From.X, &m.From.Y, &m.To.X, &m.To.Y, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return moves, nil
}

// ClearHistory deletes every session and move.
func (s *Store) ClearHistory() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM moves"); err != nil {
		return fmt.Errorf("storage: cannot clear moves: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes; NULL becomes the zero time.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
