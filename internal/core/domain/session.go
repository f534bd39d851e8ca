package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrIncompleteSession = errors.New("session requires both user and token")

// Session is the authenticated state shared across the whole view surface.
// Invariant: Token is non-empty if and only if User is non-nil. NewSession is
// the only way a session comes into existence, so a partial session cannot be
// constructed, stored, or restored.
type Session struct {
	ID        string    `json:"id"`
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSession binds an identity to its bearer credential.
func NewSession(id string, user *User, token string) (*Session, error) {
	if user == nil || token == "" {
		return nil, ErrIncompleteSession
	}
	return &Session{
		ID:        id,
		User:      user,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}, nil
}
