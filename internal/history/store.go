package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one executed browser query. Result rows are never stored.
type Entry struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	Status     string    `json:"status"` // "ok" | "error"
	Error      string    `json:"error,omitempty"`
	RowCount   int       `json:"rowCount"`
	DurationMs int64     `json:"durationMs"`
	ExecutedAt time.Time `json:"executedAt"`
}

// Store records executed queries and serves the most recent ones.
type Store interface {
	Append(e Entry) error
	Recent(limit int) ([]Entry, error)
}

// SQLiteStore persists history in SQLite.
type SQLiteStore struct {
	db *DB
}

// NewSQLiteStore creates a history store using the given database.
func NewSQLiteStore(db *DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append records one executed query.
func (s *SQLiteStore) Append(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.ExecutedAt.IsZero() {
		e.ExecutedAt = time.Now()
	}

	_, err := s.db.sql.Exec(
		`INSERT INTO queries (id, query, status, error, row_count, duration_ms, executed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Query, e.Status, e.Error, e.RowCount, e.DurationMs,
		e.ExecutedAt.UTC().Format(time.DateTime),
	)
	return err
}

// Recent returns the most recent entries, newest first. Limit of 0
// defaults to 20.
func (s *SQLiteStore) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.sql.Query(
		`SELECT id, query, status, error, row_count, duration_ms, executed_at
		 FROM queries
		 ORDER BY executed_at DESC, rowid DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var executedAt string
		if err := rows.Scan(&e.ID, &e.Query, &e.Status, &e.Error, &e.RowCount, &e.DurationMs, &executedAt); err != nil {
			return nil, err
		}
		e.ExecutedAt, _ = time.Parse(time.DateTime, executedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
