// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a local ledger of extraction runs in SQLite,
// one row per invocation, so past runs can be listed and audited.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tabledump/pkg/types"
)

// DefaultLimit caps List results when the caller passes no limit.
const DefaultLimit = 20

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at cfg.Path. Parent
// directories and the schema are created as needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			pdf_path TEXT NOT NULL,
			profile TEXT,
			pages INTEGER,
			tables INTEGER,
			rows INTEGER,
			csv_path TEXT,
			xlsx_path TEXT,
			status TEXT NOT NULL,
			error TEXT,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one run to the ledger and returns its assigned ID.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, pdf_path, profile, pages, tables, rows,
			csv_path, xlsx_path, status, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339), rec.PDFPath, rec.Profile,
		rec.Pages, rec.Tables, rec.Rows, rec.CSVPath, rec.XLSXPath,
		string(rec.Status), rec.Error, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first, capped at limit.
// A non-positive limit means DefaultLimit.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, pdf_path, profile, pages, tables, rows,
			csv_path, xlsx_path, status, error, duration_ms
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var startedAt, status string
		var durationMS int64
		if err := rows.Scan(&rec.ID, &startedAt, &rec.PDFPath, &rec.Profile,
			&rec.Pages, &rec.Tables, &rec.Rows, &rec.CSVPath, &rec.XLSXPath,
			&status, &rec.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, startedAt); parseErr == nil {
			rec.StartedAt = t
		}
		rec.Status = types.RunStatus(status)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return records, nil
}

// Clear deletes all recorded runs and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clearing runs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared runs: %w", err)
	}
	return n, nil
}
