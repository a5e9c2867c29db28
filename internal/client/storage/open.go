package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/dsaccounts/internal/client/repositories/localstore"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

var ErrUnknownDriver = errors.New("unknown store driver")

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open returns the Repository for driver together with a Closer releasing
// whatever the backend holds open. path is ignored by the memory driver.
func Open(ctx context.Context, driver, path string) (localstore.Repository, io.Closer, error) {
	switch driver {
	case DriverSQLite:
		db, err := InitDatabase(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return localstore.NewSQLiteRepository(db), db, nil

	case DriverFile:
		r, err := localstore.NewFileRepository(path)
		if err != nil {
			return nil, nil, err
		}
		return r, nopCloser, nil

	case DriverMemory:
		return localstore.NewMemoryRepository(), nopCloser, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}
