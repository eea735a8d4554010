package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GreatJeff90/bookstore/internal/repository"
)

// SQLiteStore は組み込みsqlite版（1台構成向け）。
// テーブルは db.OpenSQLite が作る。
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) GetItem(ctx context.Context, profileID string, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM storage_entries WHERE profile_id = ? AND key = ?`,
		profileID, key,
	).Scan(&v)

	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("sqlite get: %w", err)
	}
	return v, nil
}

func (s *SQLiteStore) SetItem(ctx context.Context, profileID string, key string, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO storage_entries (profile_id, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		profileID, key, value,
	)
	if err != nil {
		return fmt.Errorf("sqlite set: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RemoveItem(ctx context.Context, profileID string, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM storage_entries WHERE profile_id = ? AND key = ?`,
		profileID, key,
	)
	if err != nil {
		return fmt.Errorf("sqlite delete: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

var _ repository.Storage = (*SQLiteStore)(nil)
