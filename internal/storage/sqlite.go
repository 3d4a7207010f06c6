// Package storage provides SQLite-based persistence for screensaver sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session statistics.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Session is one finished screensaver run.
type Session struct {
	ID        int64
	Logo      string
	User      string // SSH user, empty for local runs
	ScreenW   int
	ScreenH   int
	Steps     int
	Bounces   int
	Corners   int
	Duration  time.Duration
	CreatedAt time.Time
}

// Totals aggregates every recorded session.
type Totals struct {
	Sessions int
	Steps    int
	Bounces  int
	Corners  int
	Duration time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The path is used as given; callers expand ~ themselves.
func Open(dbPath string) (*Store, error) {
	// Create parent directories
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
			logo TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			screen_w INTEGER NOT NULL,
			screen_h INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			corners INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_corners ON sessions(corners DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (logo, user, screen_w, screen_h, steps, bounces, corners, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.Logo, sess.User, sess.ScreenW, sess.ScreenH,
		sess.Steps, sess.Bounces, sess.Corners, sess.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, logo, user, screen_w, screen_h, steps, bounces, corners, duration_ms, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopCornerSessions retrieves the sessions with the most corner hits.
// Sessions without a corner hit are excluded.
func (s *Store) TopCornerSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, logo, user, screen_w, screen_h, steps, bounces, corners, duration_ms, created_at
		 FROM sessions
		 WHERE corners > 0
		 ORDER BY corners DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Logo, &e.User, &e.ScreenW, &e.ScreenH,
			&e.Steps, &e.Bounces, &e.Corners, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals sums every recorded session.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var durationMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(steps), 0), COALESCE(SUM(bounces), 0),
		        COALESCE(SUM(corners), 0), COALESCE(SUM(duration_ms), 0)
		 FROM sessions`,
	).Scan(&t.Sessions, &t.Steps, &t.Bounces, &t.Corners, &durationMS)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	t.Duration = time.Duration(durationMS) * time.Millisecond
	return t, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
