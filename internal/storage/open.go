package storage

import (
	"context"
	"fmt"

	"github.com/mind-engage/netdefense-quiz/internal/db"
)

const (
	DriverFS  = "fs"
	DriverSQL = "sql"
)

type Options struct {
	Driver   string // fs|sql
	BasePath string // fs root
	DBDriver db.Driver
	DBDSN    string
}

// Open builds the configured store. The returned close func releases the
// database handle for the sql driver and is a no-op otherwise.
func Open(ctx context.Context, opts Options) (BlobStore, func() error, error) {
	switch opts.Driver {
	case "", DriverFS:
		s, err := NewFSStore(opts.BasePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	case DriverSQL:
		dbh, err := db.Open(ctx, opts.DBDriver, opts.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return NewSQLStore(dbh), dbh.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported blob driver: %s", opts.Driver)
	}
}
