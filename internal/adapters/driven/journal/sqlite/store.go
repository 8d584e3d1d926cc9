// Package sqlite provides a SQLite-backed move journal.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docsort-cli/internal/adapters/driven/journal/sqlite/migrations"
	"github.com/custodia-labs/docsort-cli/internal/core/domain"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
)

// Ensure Journal implements the interface.
var _ driven.MoveJournal = (*Journal)(nil)

// Journal is a SQLite-backed audit trail of applied moves.
type Journal struct {
	db   *sql.DB
	path string
}

// New creates a journal at the specified data directory.
// If dataDir is empty, defaults to ~/.docsort/data/journal.db.
func New(dataDir string) (*Journal, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docsort", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "journal.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	j := &Journal{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := j.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Record stores one applied move.
func (j *Journal) Record(ctx context.Context, rec domain.MoveRecord) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO moves (id, scan_id, source_path, target_path, score, applied_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ScanID, rec.SourcePath, rec.TargetPath, rec.Score, rec.AppliedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting move record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
// limit <= 0 means no limit.
func (j *Journal) List(ctx context.Context, limit int) ([]domain.MoveRecord, error) {
	query := `
		SELECT id, scan_id, source_path, target_path, score, applied_at
		FROM moves ORDER BY applied_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying moves: %w", err)
	}
	defer rows.Close()

	var records []domain.MoveRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.MoveRecord
		var appliedAt time.Time
		if err := rows.Scan(&rec.ID, &rec.ScanID, &rec.SourcePath, &rec.TargetPath,
			&rec.Score, &appliedAt); err != nil {
			return nil, fmt.Errorf("scanning move record: %w", err)
		}
		rec.AppliedAt = appliedAt
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating moves: %w", err)
	}
	return records, nil
}

// migrate runs all pending migrations.
func (j *Journal) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := j.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_create_moves.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := j.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := j.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
