// Package storage provides SQLite-based persistence for play session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// End reasons recorded with a session.
const (
	EndQuit       = "quit"       // player left
	EndRestart    = "restart"    // player started over
	EndDisconnect = "disconnect" // SSH client went away
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord describes one finished play session.
type SessionRecord struct {
	ID               int64
	Origin           string // "local", "window" or "ssh:<user>"
	StartedAt        time.Time
	Duration         time.Duration
	ShotsFired       int
	TargetsRemaining int
	Cleared          bool
	EndReason        string
	CreatedAt        time.Time
}

// NewSessionRecord describes a scene that ended for the given reason.
func NewSessionRecord(origin string, startedAt time.Time, stats shooter.Stats, reason string) SessionRecord {
	return SessionRecord{
		Origin:           origin,
		StartedAt:        startedAt,
		Duration:         time.Duration(stats.ElapsedMs * float64(time.Millisecond)),
		ShotsFired:       stats.ShotsFired,
		TargetsRemaining: stats.TargetsRemaining,
		Cleared:          stats.Cleared,
		EndReason:        reason,
	}
}

// Summary aggregates every recorded session.
type Summary struct {
	Sessions   int
	Cleared    int
	ShotsFired int
	PlayTime   time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
			origin TEXT NOT NULL,
			started_at_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			shots_fired INTEGER NOT NULL DEFAULT 0,
			targets_remaining INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_origin ON sessions(origin);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at_ms DESC);
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
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		   (origin, started_at_ms, duration_ms, shots_fired, targets_remaining, cleared, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Origin,
		rec.StartedAt.UnixMilli(),
		rec.Duration.Milliseconds(),
		rec.ShotsFired,
		rec.TargetsRemaining,
		rec.Cleared,
		rec.EndReason,
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

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT id, origin, started_at_ms, duration_ms, shots_fired,
		        targets_remaining, cleared, end_reason, created_at
		 FROM sessions
		 ORDER BY started_at_ms DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionsByOrigin retrieves the most recent sessions of one origin.
func (s *Store) SessionsByOrigin(origin string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT id, origin, started_at_ms, duration_ms, shots_fired,
		        targets_remaining, cleared, end_reason, created_at
		 FROM sessions
		 WHERE origin = ?
		 ORDER BY started_at_ms DESC, id DESC
		 LIMIT ?`,
		origin, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var startedMs, durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Origin,
			&startedMs,
			&durationMs,
			&r.ShotsFired,
			&r.TargetsRemaining,
			&r.Cleared,
			&r.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = time.UnixMilli(startedMs)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Origins lists every origin with at least one session, sorted by name.
func (s *Store) Origins() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT origin FROM sessions ORDER BY origin")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query origins: %w", err)
	}
	defer rows.Close()

	var origins []string
	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		origins = append(origins, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return origins, nil
}

// Summarize aggregates all recorded sessions.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	var playMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(cleared), 0),
		        COALESCE(SUM(shots_fired), 0),
		        COALESCE(SUM(duration_ms), 0)
		 FROM sessions`,
	).Scan(&sum.Sessions, &sum.Cleared, &sum.ShotsFired, &playMs)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize sessions: %w", err)
	}
	sum.PlayTime = time.Duration(playMs) * time.Millisecond
	return sum, nil
}

// ClearSessions removes every recorded session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
