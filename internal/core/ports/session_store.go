package ports

import (
	"context"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

// SessionStore is the single owner of durable session state. All writes go
// through Create/Delete and complete before the call returns, so storage is
// always consistent with the last finished operation.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
