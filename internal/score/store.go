// Package score persists game results: a plain-text high score file
// shared by both editions and a SQLite history of finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package score

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultDBPath is the SQLite history database location.
const DefaultDBPath = "~/.snake-arcade/scores.db"

// Store manages the SQLite database connection for score history.
type Store struct {
	db *sql.DB
}

// Entry represents a single finished round.
type Entry struct {
	ID        int64
	Edition   string // "tui" or "gui"
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("score: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("score: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("score: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("score: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("score: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			edition TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_edition ON scores(edition);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(edition, score DESC);
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

// Save records a finished round for the given edition.
// Returns the ID of the inserted record.
func (s *Store) Save(edition string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (edition, score) VALUES (?, ?)",
		edition, score,
	)
	if err != nil {
		return 0, fmt.Errorf("score: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("score: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Top retrieves the top N scores across both editions, ordered by score
// descending. An empty edition matches everything.
func (s *Store) Top(edition string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, edition, score, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`
	args := []any{limit}
	if edition != "" {
		query = `SELECT id, edition, score, created_at
			 FROM scores
			 WHERE edition = ?
			 ORDER BY score DESC
			 LIMIT ?`
		args = []any{edition, limit}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("score: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Edition, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("score: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("score: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the highest recorded score across both editions.
// Returns 0 if no scores exist.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("score: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Clear deletes all recorded scores.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("score: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one edition.
type Stats struct {
	Edition    string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// EditionStats retrieves aggregated statistics for a specific edition.
func (s *Store) EditionStats(edition string) (*Stats, error) {
	stats := &Stats{Edition: edition}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE edition = ?`,
		edition,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("score: cannot get edition stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE edition = ? ORDER BY created_at DESC LIMIT 1`,
		edition,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("score: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}
