// Package services contains the application services of the client.
// This file defines the authentication service: registration, sign-in and
// the session lookup behind the dashboard view.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/dmitrijs2005/dsaccounts/internal/client/models"
	"github.com/dmitrijs2005/dsaccounts/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/dsaccounts/internal/cryptox"
	"github.com/dmitrijs2005/dsaccounts/internal/logging"
)

// MinPasswordLength is counted in UTF-16 code units.
const MinPasswordLength = 8

// AuthService defines the account operations behind the two forms.
//
// Contract:
//   - Register: validate a sign-up request, persist a new account and make it
//     the current session.
//   - SignIn: check credentials against the stored digest and make the
//     matching account the current session. The account store is not written.
//   - CurrentUser: return the session account, or nil when nobody signed in.
//
// Validation failures are returned as the rejection errors of this package
// and leave the store and the session untouched.
type AuthService interface {
	Register(ctx context.Context, req models.Registration) (*models.Account, error)
	SignIn(ctx context.Context, creds models.Credentials) (*models.Account, error)
	CurrentUser(ctx context.Context) (*models.Account, error)
}

type authService struct {
	mu   sync.Mutex
	repo accounts.Repository
	log  logging.Logger
	now  func() time.Time
}

func NewAuthService(repo accounts.Repository, log logging.Logger) AuthService {
	return newAuthService(repo, log, time.Now)
}

func newAuthService(repo accounts.Repository, log logging.Logger, now func() time.Time) *authService {
	return &authService{repo: repo, log: log, now: now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func passwordLength(password string) int {
	return len(utf16.Encode([]rune(password)))
}

// Register runs the sign-up gates in order; the first failing gate decides
// the returned rejection. Calls are serialized so that two registrations
// never race between the duplicate check and the insert.
func (s *authService) Register(ctx context.Context, req models.Registration) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingField
	}
	if passwordLength(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	existing, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load accounts", "error", err)
		return nil, err
	}
	if _, ok := existing[email]; ok {
		return nil, ErrDuplicateAccount
	}

	accountType := models.ParseAccountType(string(req.AccountType))
	account := &models.Account{
		Name:              name,
		Email:             email,
		AccountType:       accountType,
		PasswordHash:      cryptox.HashPassword(req.Password),
		CreatedAt:         s.now().UTC().Truncate(time.Millisecond),
		Profile:           profileFor(accountType, req.Profile),
		VerificationFiles: filesFor(accountType, req.VerificationFiles),
	}

	if err := s.repo.Insert(ctx, account); err != nil {
		if errors.Is(err, accounts.ErrAlreadyExists) {
			return nil, ErrDuplicateAccount
		}
		s.log.Error(ctx, "failed to save account", "email", email, "error", err)
		return nil, err
	}

	// The account is already stored here; a retry will be told it exists and
	// the user has to sign in instead.
	if err := s.repo.SetSession(ctx, account); err != nil {
		s.log.Error(ctx, "account saved but session could not be set", "email", email, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "account created", "email", email, "type", accountType)
	return account, nil
}

func (s *authService) SignIn(ctx context.Context, creds models.Credentials) (*models.Account, error) {
	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return nil, ErrMissingCredential
	}

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load accounts", "error", err)
		return nil, err
	}

	account, ok := all[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if !cryptox.VerifyPassword(creds.Password, account.PasswordHash) {
		return nil, ErrIncorrectPassword
	}

	if err := s.repo.SetSession(ctx, account); err != nil {
		s.log.Error(ctx, "failed to save session", "email", email, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "signed in", "email", email)
	return account, nil
}

func (s *authService) CurrentUser(ctx context.Context) (*models.Account, error) {
	return s.repo.GetSession(ctx)
}

// profileFor returns p when it belongs to t, and an empty profile of t
// otherwise, so an account never carries the other category's fields.
func profileFor(t models.AccountType, p models.Profile) models.Profile {
	if p != nil && p.AccountType() == t {
		return p
	}
	if t == models.AccountTypeDriver {
		return models.DriverProfile{}
	}
	return models.PartnerProfile{}
}

// filesFor keeps exactly the slots of t, defaulting missing ones to "".
func filesFor(t models.AccountType, files models.VerificationFiles) models.VerificationFiles {
	out := make(models.VerificationFiles, len(t.Slots()))
	for _, slot := range t.Slots() {
		out[slot] = files[slot]
	}
	return out
}
