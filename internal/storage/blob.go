package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// ErrNotFound is returned by every driver when a key has no blob.
var ErrNotFound = errors.New("blob not found")

type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (string, error) // returns canonical key
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// CleanKey normalizes a key to a slash separated path relative to the store
// root. Leading ".." elements are dropped so a key never escapes the root.
func CleanKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	k := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	k = strings.TrimPrefix(k, "/")
	if k == "" || k == "." {
		return "", errors.New("empty key")
	}
	return k, nil
}
