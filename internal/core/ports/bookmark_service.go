package ports

import (
	"context"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

// BookmarkService performs the authorized bookmark operations. Every method
// requires a session; a nil session returns domain.ErrNotAuthenticated
// before any network call is attempted.
type BookmarkService interface {
	List(ctx context.Context, session *domain.Session) ([]domain.Bookmark, error)
	// Add saves the article unless its URL is already bookmarked, in which
	// case the set is left unchanged and no request is issued.
	Add(ctx context.Context, session *domain.Session, article domain.Article) error
	Remove(ctx context.Context, session *domain.Session, url string) error
	// Toggle adds or removes by URL and reports the resulting state.
	Toggle(ctx context.Context, session *domain.Session, article domain.Article) (ToggleResult, error)
}

// ToggleResult describes the bookmark set after a toggle.
type ToggleResult struct {
	Bookmarked bool
	Count      int
}
