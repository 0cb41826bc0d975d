// Package catalog provides SQLite-based persistence for generated maps.
// Maps are stored in their compact string wire form, so the database never
// grows a second grid representation. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package catalog

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

// ErrNotFound is returned when the requested map id does not exist.
var ErrNotFound = errors.New("map not found")

// Store manages the SQLite database connection for map persistence.
type Store struct {
	db *sql.DB
}

// Entry is one stored map: its compact wire form plus lookup metadata.
type Entry struct {
	ID               string // UUID assigned on save
	Width            int
	Height           int
	Seed             int64
	Theme            string
	Algorithm        string
	Compact          string // The compact string wire form, verbatim
	CompressionRatio float64
	CreatedAt        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS maps (
			id TEXT PRIMARY KEY,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			theme TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			compact TEXT NOT NULL,
			compression_ratio REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_maps_theme ON maps(theme);
		CREATE INDEX IF NOT EXISTS idx_maps_seed ON maps(seed);
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

// Save stores a map and returns the entry with its assigned id.
func (s *Store) Save(e Entry) (Entry, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO maps (id, width, height, seed, theme, algorithm, compact, compression_ratio, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Width, e.Height, e.Seed, e.Theme, e.Algorithm, e.Compact, e.CompressionRatio, e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: cannot save map: %w", err)
	}
	return e, nil
}

// Get retrieves a stored map by id.
func (s *Store) Get(id string) (Entry, error) {
	row := s.db.QueryRow(
		`SELECT id, width, height, seed, theme, algorithm, compact, compression_ratio, created_at
		 FROM maps WHERE id = ?`, id,
	)
	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: cannot read map: %w", err)
	}
	return e, nil
}

// List retrieves stored maps, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, width, height, seed, theme, algorithm, compact, compression_ratio, created_at
		 FROM maps
		 ORDER BY created_at DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot query maps: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: row iteration error: %w", err)
	}

	return entries, nil
}

// Delete removes a stored map by id.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec("DELETE FROM maps WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("catalog: cannot delete map: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("catalog: cannot confirm delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// scanEntry reads one row through the given scan function.
func scanEntry(scan func(...any) error) (Entry, error) {
	var e Entry
	var createdAt any
	if err := scan(&e.ID, &e.Width, &e.Height, &e.Seed, &e.Theme, &e.Algorithm,
		&e.Compact, &e.CompressionRatio, &createdAt); err != nil {
		return e, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			e.CreatedAt = parsed
		} else if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
