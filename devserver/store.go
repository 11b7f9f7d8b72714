package devserver

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store records visits and reports the running total.
type Store interface {
	// RecordVisit stores one visit and returns the new total.
	RecordVisit(ctx context.Context, visitorID string) (int64, error)
	// Count returns the total without recording anything.
	Count(ctx context.Context) (int64, error)
	// Visitors returns how many distinct visitor ids have been seen.
	Visitors(ctx context.Context) (int64, error)
	Close() error
}

// MemoryStore keeps visits in memory; totals reset when the process exits.
type MemoryStore struct {
	mu       sync.Mutex
	count    int64
	visitors map[string]struct{}
}

// NewMemoryStore returns an empty store, optionally starting at start visits.
func NewMemoryStore(start int64) *MemoryStore {
	return &MemoryStore{count: start, visitors: make(map[string]struct{})}
}

func (s *MemoryStore) RecordVisit(ctx context.Context, visitorID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	s.visitors[visitorID] = struct{}{}
	return s.count, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, nil
}

func (s *MemoryStore) Visitors(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.visitors)), nil
}

func (s *MemoryStore) Close() error { return nil }

// SQLiteStore keeps one row per visit in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id TEXT PRIMARY KEY,
			visitor_id TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create visits table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) RecordVisit(ctx context.Context, visitorID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO visits (id, visitor_id, created_at) VALUES (?, ?, ?)",
		uuid.NewString(), visitorID, time.Now().UnixMilli(),
	); err != nil {
		return 0, fmt.Errorf("insert visit: %w", err)
	}

	var n int64
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM visits").Scan(&n); err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visits").Scan(&n); err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Visitors(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT visitor_id) FROM visits").Scan(&n); err != nil {
		return 0, fmt.Errorf("count visitors: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
