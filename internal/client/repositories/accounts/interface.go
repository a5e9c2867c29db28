// Package accounts persists the account store and the session marker in a
// localstore.Repository.
//
// The account store lives under UsersKey as one JSON object mapping email to
// account; the session marker lives under SessionKey as a single JSON account.
// Malformed values are logged and read as absent.
package accounts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/dsaccounts/internal/client/models"
)

const (
	UsersKey   = "ds_users"
	SessionKey = "ds_currentUser"
)

var ErrAlreadyExists = errors.New("account already exists")

type Repository interface {
	// LoadAll reads the whole account store. A missing or unparsable store
	// yields an empty map and a nil error.
	LoadAll(ctx context.Context) (map[string]*models.Account, error)
	// SaveAll overwrites the whole account store.
	SaveAll(ctx context.Context, accounts map[string]*models.Account) error
	// Insert adds account under its email unless that email is already
	// present, in which case ErrAlreadyExists is returned.
	Insert(ctx context.Context, account *models.Account) error

	// GetSession returns nil when nobody is signed in.
	GetSession(ctx context.Context) (*models.Account, error)
	SetSession(ctx context.Context, account *models.Account) error
}
