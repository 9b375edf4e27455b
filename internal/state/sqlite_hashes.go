package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetContentHash returns the stored content hash for a file path,
// or "" when none is stored.
func (s *SQLiteStore) GetContentHash(ctx context.Context, filePath string) (string, error) {
	if s.db == nil {
		return "", errNotOpened
	}

	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT content_hash FROM file_hashes WHERE file_path = ?`, filePath,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get content hash: %w", err)
	}

	return hash, nil
}

// SetContentHash stores the content hash for a file path.
func (s *SQLiteStore) SetContentHash(ctx context.Context, filePath, hash string) error {
	if s.db == nil {
		return errNotOpened
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO file_hashes (file_path, content_hash, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(file_path) DO UPDATE SET content_hash = excluded.content_hash, updated_at = excluded.updated_at`,
		filePath, hash, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to set content hash: %w", err)
	}
	return nil
}

// DeleteContentHash removes the content hash for a file path.
func (s *SQLiteStore) DeleteContentHash(ctx context.Context, filePath string) error {
	if s.db == nil {
		return errNotOpened
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM file_hashes WHERE file_path = ?`, filePath); err != nil {
		return fmt.Errorf("failed to delete content hash: %w", err)
	}
	return nil
}
