package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/vymova/internal"
)

// Entry is one stored transcription
type Entry struct {
	Key         string
	Text        string
	IPA         string
	Variant     string
	CheckAccent bool
	RunID       string
	CreatedAt   time.Time
}

// Store is a SQLite backed lexicon
type Store struct {
	db    *sql.DB
	runID string
}

// Open opens or creates the lexicon database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create lexicon directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	// SQLite allows one writer; the worker pool serializes on this connection
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			key text PRIMARY KEY,
			text text NOT NULL,
			ipa text NOT NULL,
			variant text NOT NULL,
			check_accent integer NOT NULL,
			run_id text NOT NULL,
			created_at integer NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_entries_run ON entries (run_id)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun starts a new run. Entries stored afterwards carry its id.
func (s *Store) BeginRun() string {
	s.runID = uuid.New().String()
	return s.runID
}

// RunID returns the id of the current run, empty before BeginRun
func (s *Store) RunID() string {
	return s.runID
}

// Put stores e, replacing any entry with the same key. Key, RunID and
// CreatedAt are filled in when empty.
func (s *Store) Put(ctx context.Context, e Entry) error {
	if e.Key == "" {
		e.Key = internal.EntryKey(e.Text, e.Variant, e.CheckAccent)
	}
	if e.RunID == "" {
		e.RunID = s.runID
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO entries (key, text, ipa, variant, check_accent, run_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Key, e.Text, e.IPA, e.Variant, e.CheckAccent, e.RunID, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to store %q: %w", e.Text, err)
	}
	return nil
}

// Get looks up the transcription of text. found is false when there is none.
func (s *Store) Get(ctx context.Context, text, variant string, checkAccent bool) (e Entry, found bool, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT key, text, ipa, variant, check_accent, run_id, created_at
		 FROM entries WHERE key = ?`,
		internal.EntryKey(text, variant, checkAccent))

	e, err = scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to look up %q: %w", text, err)
	}
	return e, true, nil
}

// All returns every entry ordered by text
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	return s.query(ctx, `SELECT key, text, ipa, variant, check_accent, run_id, created_at
		FROM entries ORDER BY text, variant`)
}

// Run returns the entries stored by one run
func (s *Store) Run(ctx context.Context, runID string) ([]Entry, error) {
	return s.query(ctx, `SELECT key, text, ipa, variant, check_accent, run_id, created_at
		FROM entries WHERE run_id = ? ORDER BY text, variant`, runID)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lexicon: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Entry, error) {
	var (
		e       Entry
		created int64
	)
	if err := row.Scan(&e.Key, &e.Text, &e.IPA, &e.Variant, &e.CheckAccent, &e.RunID, &created); err != nil {
		return Entry{}, err
	}
	e.CreatedAt = time.UnixMilli(created)
	return e, nil
}
