package ports

import (
	"context"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials against the backend and, on success,
	// creates and persists a session holding both the user and the token.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// Register creates an account on the backend. It does not log in.
	Register(ctx context.Context, name, email, password string) error
	// Logout removes the persisted session. Unknown IDs are not an error.
	Logout(ctx context.Context, sessionID string) error
	// CurrentSession resolves a session ID to the stored session, or
	// domain.ErrSessionNotFound.
	CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error)
}
