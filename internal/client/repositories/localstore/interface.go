package localstore

import (
	"context"
	"errors"
)

// ErrCorrupt is returned when the backing document of a store cannot be
// decoded. Callers that tolerate malformed state treat it like an absent key.
var ErrCorrupt = errors.New("local store is corrupt")

// UpdateFunc receives the current value of a key (nil when absent) and
// returns the value to store. Returning an error aborts the update and leaves
// the stored value untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// Repository is a string-keyed store of opaque values, the local equivalent
// of a browser's localStorage.
type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value of key.
	Set(ctx context.Context, key string, value []byte) error
	// Update runs a read-modify-write of key atomically with respect to other
	// Set and Update calls on the same repository.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
