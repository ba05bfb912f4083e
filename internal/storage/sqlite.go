// Package storage provides SQLite-based persistence for puzzle solves.
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

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// SolveEntry represents one completed puzzle.
type SolveEntry struct {
	ID           int64
	Rows         int
	Cols         int
	Pieces       int
	Moves        int
	DurationSecs int
	Picture      string // Base name of the source image, or "builtin"
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			pieces INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			picture TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_grid ON solves(rows, cols);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(rows, cols, duration_secs ASC);
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

// SaveSolve records a completed puzzle.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(e SolveEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves (rows, cols, pieces, moves, duration_secs, picture)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Rows, e.Cols, e.Pieces, e.Moves, e.DurationSecs, e.Picture,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSolves retrieves the most recent N solves across all grids.
func (s *Store) RecentSolves(limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, rows, cols, pieces, moves, duration_secs, picture, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// BestSolves retrieves the fastest N solves for a given grid size.
func (s *Store) BestSolves(gridRows, gridCols, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, rows, cols, pieces, moves, duration_secs, picture, created_at
		 FROM solves
		 WHERE rows = ? AND cols = ?
		 ORDER BY duration_secs ASC, moves ASC
		 LIMIT ?`,
		gridRows, gridCols, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// BestDuration returns the fastest solve time in seconds for a grid size.
// Returns 0 if no solves exist.
func (s *Store) BestDuration(gridRows, gridCols int) (int, error) {
	var secs sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_secs) FROM solves WHERE rows = ? AND cols = ?",
		gridRows, gridCols,
	).Scan(&secs)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best duration: %w", err)
	}

	if !secs.Valid {
		return 0, nil
	}

	return int(secs.Int64), nil
}

// ClearSolves deletes all recorded solves.
func (s *Store) ClearSolves() error {
	_, err := s.db.Exec("DELETE FROM solves")
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// scanSolves reads solve rows into entries.
func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Rows, &e.Cols, &e.Pieces, &e.Moves,
			&e.DurationSecs, &e.Picture, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
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
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
