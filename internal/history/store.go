// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists pandoc invocations in a SQLite database so a
// user can see what was run, with which arguments, and how it ended.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/dmitriid/panpipe/pkg/types"
)

const (
	defaultMaxResults = 20
	// timeLayout is fixed-width so stored timestamps sort lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// Store records invocations. It satisfies pandoc.Recorder.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the history database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS invocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			executable TEXT NOT NULL,
			args TEXT NOT NULL,
			mode TEXT NOT NULL,
			exit_status INTEGER NOT NULL,
			error TEXT,
			started_at TEXT NOT NULL,
			duration_ns INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_invocations_started_at ON invocations(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts inv.
func (s *Store) Record(ctx context.Context, inv types.Invocation) error {
	args, err := json.Marshal(inv.Args)
	if err != nil {
		return fmt.Errorf("encoding args: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO invocations (executable, args, mode, exit_status, error, started_at, duration_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.Binary, string(args), string(inv.Mode), inv.ExitStatus, inv.Error,
		inv.StartedAt.UTC().Format(timeLayout), int64(inv.Duration),
	)
	if err != nil {
		return fmt.Errorf("inserting invocation: %w", err)
	}
	return nil
}

// ListOptions filters List.
type ListOptions struct {
	// Limit caps the rows returned; zero uses the configured default.
	Limit int
	// FailedOnly keeps invocations that exited non-zero or did not start.
	FailedOnly bool
}

// List returns the most recent invocations, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.Invocation, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, executable, args, mode, exit_status, error, started_at, duration_ns FROM invocations`
	if opts.FailedOnly {
		query += ` WHERE exit_status != 0 OR (error IS NOT NULL AND error != '')`
	}
	query += ` ORDER BY id DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying invocations: %w", err)
	}
	defer rows.Close()

	var out []types.Invocation
	for rows.Next() {
		var (
			inv       types.Invocation
			args      string
			mode      string
			errText   sql.NullString
			startedAt string
			duration  int64
		)
		if err := rows.Scan(&inv.ID, &inv.Binary, &args, &mode, &inv.ExitStatus, &errText, &startedAt, &duration); err != nil {
			return nil, fmt.Errorf("scanning invocation: %w", err)
		}
		if err := json.Unmarshal([]byte(args), &inv.Args); err != nil {
			return nil, fmt.Errorf("decoding args of invocation %d: %w", inv.ID, err)
		}
		inv.Mode = types.InputMode(mode)
		inv.Error = errText.String
		inv.Duration = time.Duration(duration)
		if inv.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, fmt.Errorf("parsing start time of invocation %d: %w", inv.ID, err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Prune deletes invocations started before cutoff and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM invocations WHERE started_at < ?`,
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("pruning invocations: %w", err)
	}
	return res.RowsAffected()
}

// Export writes the listed invocations to w as YAML.
func (s *Store) Export(ctx context.Context, opts ListOptions, w io.Writer) error {
	invs, err := s.List(ctx, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(invs); err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return enc.Close()
}
