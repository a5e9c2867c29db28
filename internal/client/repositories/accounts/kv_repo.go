package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dsaccounts/internal/client/models"
	"github.com/dmitrijs2005/dsaccounts/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/dsaccounts/internal/logging"
)

type KVRepository struct {
	store localstore.Repository
	log   logging.Logger
}

func NewKVRepository(store localstore.Repository, log logging.Logger) *KVRepository {
	return &KVRepository{store: store, log: log}
}

func (r *KVRepository) LoadAll(ctx context.Context) (map[string]*models.Account, error) {
	data, err := r.read(ctx, UsersKey)
	if err != nil {
		return nil, err
	}
	return r.decodeUsers(ctx, data), nil
}

func (r *KVRepository) SaveAll(ctx context.Context, accounts map[string]*models.Account) error {
	data, err := encodeUsers(accounts)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, UsersKey, data); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

// Insert adds account unless its email is already a key of the stored
// document. Records it cannot decode are carried over byte for byte.
func (r *KVRepository) Insert(ctx context.Context, account *models.Account) error {
	err := r.store.Update(ctx, UsersKey, func(current []byte) ([]byte, error) {
		records := r.decodeRecords(ctx, current)
		if _, ok := records[account.Email]; ok {
			return nil, ErrAlreadyExists
		}
		data, err := json.Marshal(account)
		if err != nil {
			return nil, fmt.Errorf("failed to encode account: %w", err)
		}
		records[account.Email] = data
		return encodeRecords(records)
	})
	if err != nil && !errors.Is(err, ErrAlreadyExists) {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return err
}

func (r *KVRepository) GetSession(ctx context.Context) (*models.Account, error) {
	data, err := r.read(ctx, SessionKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var account *models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		r.log.Warn(ctx, "session marker is unreadable, treating as signed out", "key", SessionKey, "error", err)
		return nil, nil
	}
	return account, nil
}

func (r *KVRepository) SetSession(ctx context.Context, account *models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, SessionKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// read returns nil for an absent key and for a corrupt backing document.
func (r *KVRepository) read(ctx context.Context, key string) ([]byte, error) {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, localstore.ErrCorrupt) {
		r.log.Warn(ctx, "local store is unreadable, treating as empty", "key", key, "error", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// decodeRecords splits the users document into per-email raw records. Only a
// document that is not a JSON object reads as empty; null records are dropped.
func (r *KVRepository) decodeRecords(ctx context.Context, data []byte) map[string]json.RawMessage {
	records := map[string]json.RawMessage{}
	if len(data) == 0 {
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.Warn(ctx, "account store is unreadable, treating as empty", "key", UsersKey, "error", err)
		return map[string]json.RawMessage{}
	}
	if records == nil {
		records = map[string]json.RawMessage{}
	}
	for email, raw := range records {
		if len(raw) == 0 || string(raw) == "null" {
			delete(records, email)
		}
	}
	return records
}

// decodeUsers decodes every record it can and skips the rest.
func (r *KVRepository) decodeUsers(ctx context.Context, data []byte) map[string]*models.Account {
	users := map[string]*models.Account{}
	for email, raw := range r.decodeRecords(ctx, data) {
		var a models.Account
		if err := json.Unmarshal(raw, &a); err != nil {
			r.log.Warn(ctx, "skipping unreadable account record", "key", UsersKey, "email", email, "error", err)
			continue
		}
		users[email] = &a
	}
	return users
}

func encodeRecords(records map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode accounts: %w", err)
	}
	return data, nil
}

func encodeUsers(users map[string]*models.Account) ([]byte, error) {
	if users == nil {
		users = map[string]*models.Account{}
	}
	data, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("failed to encode accounts: %w", err)
	}
	return data, nil
}
