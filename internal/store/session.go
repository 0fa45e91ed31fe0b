package store

import (
	"sync"
	"time"

	"github.com/cx-tal-miterani/skybook/internal/models"
	"github.com/google/uuid"
)

// SessionStore holds at most one signed-in account for the whole process.
type SessionStore struct {
	mu      sync.RWMutex
	session *models.Session
	account models.Account
	now     func() time.Time
}

// NewSessionStore creates a store with nobody signed in
func NewSessionStore() *SessionStore {
	return &SessionStore{now: time.Now}
}

// Start signs account in, replacing any current session.
func (s *SessionStore) Start(account models.Account) models.Session {
	session := models.Session{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		StartedAt: s.now(),
	}

	s.mu.Lock()
	s.session = &session
	s.account = account
	s.mu.Unlock()

	return session
}

// Current returns the active session and its account.
func (s *SessionStore) Current() (models.Session, models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.Session{}, models.Account{}, false
	}
	return *s.session, s.account, true
}

// End signs the current account out and returns it.
func (s *SessionStore) End() (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.Account{}, ErrNoSession
	}
	account := s.account
	s.session = nil
	s.account = models.Account{}
	return account, nil
}
