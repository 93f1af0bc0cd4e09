// Package store holds the in-memory account registry. It is the only owner
// of Account records; everything it hands out is a copy.
package store

import (
	"sync"
	"time"

	"github.com/raimonvibe/email-authentication-tutorial/internal/model"
	appErr "github.com/raimonvibe/email-authentication-tutorial/internal/pkg/errors"
)

// AccountStore keeps accounts keyed by email plus a side-index from email to
// the pending verification code. The index is redundant with
// Account.PendingCode and the two are always updated together under the same
// lock, so they cannot diverge.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
	codes    map[string]string
	order    []string
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]*model.Account),
		codes:    make(map[string]string),
	}
}

// Create registers a new account in PENDING_VERIFICATION state. It fails
// with ErrDuplicateAccount when the email already belongs to a verified
// account; callers handle the unverified-duplicate (resend) case themselves
// via Get and SetPendingCode.
func (s *AccountStore) Create(id, email, passwordHash, code string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.accounts[email]; ok && existing.IsVerified {
		return model.Account{}, appErr.ErrDuplicateAccount
	}
	account := &model.Account{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		IsVerified:   false,
		CreatedAt:    time.Now().UTC(),
		PendingCode:  code,
	}
	if _, ok := s.accounts[email]; !ok {
		s.order = append(s.order, email)
	}
	s.accounts[email] = account
	s.codes[email] = code
	return *account, nil
}

// Get returns a snapshot of the account, if any.
func (s *AccountStore) Get(email string) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[email]
	if !ok {
		return model.Account{}, false
	}
	return *account, true
}

// PendingCode returns the side-index entry for the email.
func (s *AccountStore) PendingCode(email string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.codes[email]
	return code, ok
}

// SetPendingCode rotates the outstanding verification code, invalidating any
// previous one. Both the account field and the side-index are replaced.
func (s *AccountStore) SetPendingCode(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[email]
	if !ok {
		return appErr.ErrNotFound
	}
	account.PendingCode = code
	s.codes[email] = code
	return nil
}

// SetVerified marks the account verified and clears the pending code from
// both the account and the side-index. Idempotency is the caller's concern:
// the Auth Service checks IsVerified before calling.
func (s *AccountStore) SetVerified(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[email]
	if !ok {
		return appErr.ErrNotFound
	}
	account.IsVerified = true
	account.PendingCode = ""
	delete(s.codes, email)
	return nil
}

// List returns snapshots of all accounts in insertion order. The order is
// stable across calls since accounts are never deleted.
func (s *AccountStore) List() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Account, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, *s.accounts[email])
	}
	return out
}

// Len reports the number of registered accounts.
func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
