package models

import "time"

// Account represents a registered user. Accounts are never mutated after
// registration; PasswordHash never leaves the process.
type Account struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the process-wide "currently signed in" marker
type Session struct {
	ID        string    `json:"id"`
	AccountID int       `json:"accountId"`
	StartedAt time.Time `json:"startedAt"`
}

// AuthForm holds login and registration fields. Name and Confirm are only
// read for registrations.
type AuthForm struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm,omitempty"`
}

// AuthResponse is returned after a successful login or registration
type AuthResponse struct {
	Account *Account `json:"account"`
	Session *Session `json:"session"`
	Message string   `json:"message"`
}

// AuthState describes what the auth link should show
type AuthState struct {
	Authenticated bool     `json:"authenticated"`
	Label         string   `json:"label"`
	Account       *Account `json:"account,omitempty"`
	Session       *Session `json:"session,omitempty"`
}

// MessageResponse carries a single acknowledgment message
type MessageResponse struct {
	Message string `json:"message"`
}
