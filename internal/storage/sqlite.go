// Package storage persists finished snake sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values stored with each result.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// ErrInvalidOutcome is returned when a result is neither won nor lost.
var ErrInvalidOutcome = errors.New("storage: outcome must be won or lost")

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Result is a finished session to be recorded.
type Result struct {
	SessionID  string // Generated when empty
	Difficulty string
	Length     int
	Outcome    string
	Ticks      uint64
}

// ScoreEntry is a stored session result.
type ScoreEntry struct {
	ID         int64
	SessionID  string
	Difficulty string
	Length     int
	Outcome    string
	Ticks      uint64
	CreatedAt  time.Time
}

// Won reports whether the session filled the board.
func (e ScoreEntry) Won() bool { return e.Outcome == OutcomeWon }

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			length INTEGER NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost')),
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(difficulty, length DESC, ticks ASC);
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

// SaveResult records a finished session and returns the stored entry ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, r.Outcome)
	}
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (session_id, difficulty, length, outcome, ticks)
		 VALUES (?, ?, ?, ?, ?)`,
		r.SessionID, r.Difficulty, r.Length, r.Outcome, int64(r.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best results for a difficulty: longest snake first,
// fewer ticks breaking ties.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, difficulty, length, outcome, ticks, created_at
		 FROM results
		 WHERE difficulty = ?
		 ORDER BY length DESC, ticks ASC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// RecentResults returns the latest results across all difficulties.
func (s *Store) RecentResults(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, difficulty, length, outcome, ticks, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Difficulty, &e.Length, &e.Outcome, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles both driver representations of DATETIME columns.
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

// HighScore returns the longest snake recorded for a difficulty, 0 if none.
func (s *Store) HighScore(difficulty string) (int, error) {
	var length sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(length) FROM results WHERE difficulty = ?",
		difficulty,
	).Scan(&length)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !length.Valid {
		return 0, nil
	}
	return int(length.Int64), nil
}

// ClearScores deletes all results for a difficulty.
func (s *Store) ClearScores(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats aggregates the results of one difficulty.
type Stats struct {
	Difficulty string
	Games      int
	Wins       int
	Best       int
	AvgLength  float64
	LastPlayed time.Time
}

// GetStats returns aggregated statistics for a difficulty.
func (s *Store) GetStats(difficulty string) (*Stats, error) {
	stats := &Stats{Difficulty: difficulty}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(length), 0),
		        COALESCE(AVG(length), 0),
		        MAX(created_at)
		 FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Games, &stats.Wins, &stats.Best, &stats.AvgLength, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
