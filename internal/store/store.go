// Package store persists session results and progression state in a
// local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ResultRepo returns a ResultRepo backed by this store.
func (s *Store) ResultRepo() ResultRepo {
	return &resultRepo{db: s.db}
}

// ChallengeRepo returns a ChallengeRepo backed by this store.
func (s *Store) ChallengeRepo() ChallengeRepo {
	return &challengeRepo{db: s.db}
}

// StreakRepo returns a StreakRepo backed by this store.
func (s *Store) StreakRepo() StreakRepo {
	return &streakRepo{db: s.db}
}

// AchievementRepo returns an AchievementRepo backed by this store.
func (s *Store) AchievementRepo() AchievementRepo {
	return &achievementRepo{db: s.db}
}

// ResetChild removes every stored row for one player profile.
func (s *Store) ResetChild(ctx context.Context, childID string) error {
	stmts := []string{
		`DELETE FROM session_results WHERE child_id = ?`,
		`DELETE FROM daily_challenges WHERE child_id = ?`,
		`DELETE FROM streaks WHERE child_id = ?`,
		`DELETE FROM achievements WHERE child_id = ?`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt, childID); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS session_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			child_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			completion_ms INTEGER NOT NULL,
			retry_count INTEGER NOT NULL,
			success_rate REAL NOT NULL,
			reaction_samples TEXT NOT NULL DEFAULT '[]',
			joy REAL NOT NULL,
			frustration REAL NOT NULL,
			engagement REAL NOT NULL,
			focus REAL NOT NULL,
			overall REAL NOT NULL,
			finished_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_child ON session_results(child_id, finished_at)`,
		`CREATE TABLE IF NOT EXISTS daily_challenges (
			child_id TEXT NOT NULL,
			date TEXT NOT NULL,
			variant TEXT NOT NULL,
			level_id TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (child_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS streaks (
			child_id TEXT PRIMARY KEY,
			streak_days INTEGER NOT NULL,
			last_play_date TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS achievements (
			child_id TEXT NOT NULL,
			achievement_id TEXT NOT NULL,
			progress INTEGER NOT NULL,
			max_progress INTEGER NOT NULL,
			unlocked_at TEXT,
			PRIMARY KEY (child_id, achievement_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MINDPLAY_DB environment variable
// 2. $XDG_DATA_HOME/mindplay/mindplay.db
// 3. ~/.local/share/mindplay/mindplay.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MINDPLAY_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mindplay", "mindplay.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
