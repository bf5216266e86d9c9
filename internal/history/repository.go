// Package history keeps a log of played sessions in sqlite.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

// NewRepository opens or creates the database at path, creating parent
// directories as needed.
func NewRepository(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return repo, nil
}

func (r *Repository) init() error {
	sessionsQuery := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		workout TEXT NOT NULL,
		started_at TEXT NOT NULL,
		stopped_at TEXT NOT NULL,
		spent INTEGER NOT NULL,
		furthest INTEGER NOT NULL DEFAULT 0,
		screens INTEGER NOT NULL DEFAULT 0,
		completed INTEGER NOT NULL DEFAULT 0
	)
	`
	if _, err := r.db.Exec(sessionsQuery); err != nil {
		return err
	}

	_, err := r.db.Exec("CREATE INDEX IF NOT EXISTS idx_sessions_stopped_at ON sessions(stopped_at)")
	return err
}

// Record stores e, assigning an ID when it has none.
func (r *Repository) Record(e *Entry) error {
	if e.Workout == "" {
		return errors.New("history entry needs a workout title")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	completed := 0
	if e.Completed {
		completed = 1
	}
	_, err := r.db.Exec(
		"INSERT INTO sessions (id, workout, started_at, stopped_at, spent, furthest, screens, completed) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID,
		e.Workout,
		e.StartedAt.UTC().Format(time.RFC3339),
		e.StoppedAt.UTC().Format(time.RFC3339),
		int64(e.Spent),
		e.Furthest,
		e.Screens,
		completed,
	)
	if err != nil {
		return fmt.Errorf("recording session %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A limit of 0 or less
// returns every entry.
func (r *Repository) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	return r.query(
		"SELECT id, workout, started_at, stopped_at, spent, furthest, screens, completed FROM sessions ORDER BY stopped_at DESC, rowid DESC LIMIT ?",
		limit,
	)
}

// ByWorkout returns the entries for one workout title, newest first.
func (r *Repository) ByWorkout(title string) ([]Entry, error) {
	return r.query(
		"SELECT id, workout, started_at, stopped_at, spent, furthest, screens, completed FROM sessions WHERE workout = ? ORDER BY stopped_at DESC, rowid DESC",
		title,
	)
}

func (r *Repository) query(q string, args ...any) ([]Entry, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var startedAt, stoppedAt string
		var spent int64
		var completed int
		if err := rows.Scan(&e.ID, &e.Workout, &startedAt, &stoppedAt, &spent, &e.Furthest, &e.Screens, &completed); err != nil {
			return nil, err
		}
		e.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		e.StoppedAt, _ = time.Parse(time.RFC3339, stoppedAt)
		e.Spent = time.Duration(spent)
		e.Completed = completed == 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
