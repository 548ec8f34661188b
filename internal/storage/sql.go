package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"time"
)

// SQLStore keeps blobs in the "blobs" table created by db.Open.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	k, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO blobs (blob_key,body,updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (blob_key) DO UPDATE SET body=EXCLUDED.body, updated_at=EXCLUDED.updated_at`,
		k, body, time.Now().Unix())
	if err != nil {
		return "", err
	}
	return k, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	k, err := CleanKey(key)
	if err != nil {
		return nil, err
	}
	var body []byte
	if err := s.db.QueryRowContext(ctx, `SELECT body FROM blobs WHERE blob_key=$1`, k).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}
