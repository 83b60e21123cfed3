// Package history persists one row per parse invocation — the audit
// trail a long-running javaparse process (watch, batch indexing) needs
// once multiple parses happen over its lifetime. See doc.go for usage.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/javalang/javaparse/pkg/config"
)

// Store is a sqlite-backed parse history store. A zero-value Store is
// not usable; construct one with NewStore.
type Store struct {
	db *sql.DB
	logger *slog.Logger
}

// NewStore opens (creating if necessary) the sqlite database at
// cfg.DBPath, enables WAL mode for concurrent readers during a batch
// parse, and applies the parse_history schema.
func NewStore(cfg config.HistoryConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, NewStorageError("open", err)
	}

	s := &Store{
		db: db,
		logger: slog.Default().With("component", "history.store"),
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("history store initialized", "path", cfg.DBPath)
	return s, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return NewStorageError("enable_wal", err)
	}
	if _, err := s.db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		return NewStorageError("set_busy_timeout", err)
	}
	if _, err := s.db.Exec(Schema); err != nil {
		return NewStorageError("create_schema", err)
	}
	if _, err := s.db.Exec(InsertSchemaVersion, SchemaVersion); err != nil {
		return NewStorageError("insert_schema_version", err)
	}

	var version int
	if err := s.db.QueryRow(GetSchemaVersion).Scan(&version); err != nil && err != sql.ErrNoRows {
		return NewStorageError("get_schema_version", err)
	}
	if version != SchemaVersion {
		return NewStorageError("schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}
	return nil
}

// Record persists entry. RecordedAt is set to the current time if zero.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parse_history (id, path, success, duration_ms, tokens, nodes, error_message, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Path, entry.Success, entry.DurationMS, entry.Tokens, entry.Nodes, entry.ErrorMessage, entry.RecordedAt)
	if err != nil {
		return NewStorageError("record", err)
	}
	return nil
}

// Query returns entries matching filter, most recently recorded first.
func (s *Store) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	where, args := buildWhereClause(filter)

	query := "SELECT id, path, success, duration_ms, tokens, nodes, error_message, recorded_at FROM parse_history"
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY recorded_at DESC"

	limit := 100
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	query += fmt.Sprintf(" LIMIT %d", limit)
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewStorageError("query", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var errMsg sql.NullString
		if err := rows.Scan(&e.ID, &e.Path, &e.Success, &e.DurationMS, &e.Tokens, &e.Nodes, &errMsg, &e.RecordedAt); err != nil {
			return nil, NewStorageError("scan", err)
		}
		e.ErrorMessage = errMsg.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError("query", err)
	}
	return entries, nil
}

// Count returns the number of entries matching filter.
func (s *Store) Count(ctx context.Context, filter Filter) (int64, error) {
	where, args := buildWhereClause(filter)
	query := "SELECT COUNT(*) FROM parse_history"
	if where != "" {
		query += " WHERE " + where
	}
	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, NewStorageError("count", err)
	}
	return count, nil
}

// DeleteOlderThan removes entries recorded before cutoff, returning the
// number of rows deleted.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM parse_history WHERE recorded_at < ?", cutoff)
	if err != nil {
		return 0, NewStorageError("delete", err)
	}
	return result.RowsAffected()
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return NewStorageError("close", err)
	}
	return nil
}

func buildWhereClause(filter Filter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Path != "" {
		conditions = append(conditions, "path = ?")
		args = append(args, filter.Path)
	}
	if filter.Success != nil {
		conditions = append(conditions, "success = ?")
		args = append(args, *filter.Success)
	}
	if filter.After != nil {
		conditions = append(conditions, "recorded_at >= ?")
		args = append(args, *filter.After)
	}
	if filter.Before != nil {
		conditions = append(conditions, "recorded_at <= ?")
		args = append(args, *filter.Before)
	}

	where := ""
	for i, cond := range conditions {
		if i > 0 {
			where += " AND "
		}
		where += cond
	}
	return where, args
}
