// Package store keeps accounts and the current session in process memory.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cx-tal-miterani/skybook/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail     = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// MaxPasswordBytes is the longest password bcrypt can hash
const MaxPasswordBytes = 72

// User-facing messages for the business-rule failures
const (
	MsgDuplicateEmail     = "User already exists with this email"
	MsgInvalidCredentials = "Invalid email or password"
)

// AccountStore is an append-only, in-memory set of accounts keyed
// case-insensitively by email.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []*models.Account
	byEmail  map[string]*models.Account
	lastID   int
	cost     int
	now      func() time.Time
}

// NewAccountStore creates an empty store hashing passwords at the given
// bcrypt cost. Out-of-range costs fall back to bcrypt.DefaultCost.
func NewAccountStore(cost int) *AccountStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AccountStore{
		byEmail: make(map[string]*models.Account),
		cost:    cost,
		now:     time.Now,
	}
}

// Register adds a new account. It fails with ErrDuplicateEmail when the
// email is already taken in any letter case.
func (s *AccountStore) Register(name, email, password string) (models.Account, error) {
	key := emailKey(email)

	s.mu.RLock()
	_, exists := s.byEmail[key]
	s.mu.RUnlock()
	if exists {
		return models.Account{}, ErrDuplicateEmail
	}

	if len(password) > MaxPasswordBytes {
		return models.Account{}, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: another registration may have won while hashing.
	if _, exists := s.byEmail[key]; exists {
		return models.Account{}, ErrDuplicateEmail
	}

	s.lastID++
	account := &models.Account{
		ID:           s.lastID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	s.accounts = append(s.accounts, account)
	s.byEmail[key] = account

	return *account, nil
}

// FindByEmail returns the account registered under email, ignoring case.
func (s *AccountStore) FindByEmail(email string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byEmail[emailKey(email)]
	if !ok {
		return models.Account{}, false
	}
	return *account, true
}

// Login checks password against the stored hash. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AccountStore) Login(email, password string) (models.Account, error) {
	// bcrypt ignores everything past 72 bytes; no stored password is longer.
	if len(password) > MaxPasswordBytes {
		return models.Account{}, ErrInvalidCredentials
	}

	account, ok := s.FindByEmail(email)
	if !ok {
		return models.Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

// All returns the accounts in registration order.
func (s *AccountStore) All() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, *a)
	}
	return accounts
}

// Count returns the number of registered accounts.
func (s *AccountStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

func emailKey(email string) string {
	return strings.ToLower(email)
}
