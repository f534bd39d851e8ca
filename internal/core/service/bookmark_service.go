package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// BookmarkService wraps the authorized bookmark calls. It owns the two
// client-side guarantees the backend is not trusted with: no call is ever
// attempted without a session, and an already-bookmarked URL is never
// re-submitted.
type BookmarkService struct {
	backend ports.BackendGateway
	logger  zerolog.Logger
}

func NewBookmarkService(backend ports.BackendGateway, logger zerolog.Logger) *BookmarkService {
	return &BookmarkService{backend: backend, logger: logger}
}

func (s *BookmarkService) List(ctx context.Context, session *domain.Session) ([]domain.Bookmark, error) {
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.backend.ListBookmarks(ctx, session.Token)
}

func (s *BookmarkService) Add(ctx context.Context, session *domain.Session, article domain.Article) error {
	if session == nil {
		return domain.ErrNotAuthenticated
	}

	existing, err := s.backend.ListBookmarks(ctx, session.Token)
	if err != nil {
		return err
	}
	if containsURL(existing, article.URL) {
		// Already saved; leave the set untouched.
		return nil
	}

	if err := s.backend.AddBookmark(ctx, session.Token, domain.BookmarkOf(article)); err != nil {
		return err
	}
	s.logger.Info().Str("url", article.URL).Msg("bookmark added")
	return nil
}

func (s *BookmarkService) Remove(ctx context.Context, session *domain.Session, url string) error {
	if session == nil {
		return domain.ErrNotAuthenticated
	}
	if err := s.backend.RemoveBookmark(ctx, session.Token, url); err != nil {
		return err
	}
	s.logger.Info().Str("url", url).Msg("bookmark removed")
	return nil
}

func (s *BookmarkService) Toggle(ctx context.Context, session *domain.Session, article domain.Article) (ports.ToggleResult, error) {
	if session == nil {
		return ports.ToggleResult{}, domain.ErrNotAuthenticated
	}

	existing, err := s.backend.ListBookmarks(ctx, session.Token)
	if err != nil {
		return ports.ToggleResult{}, err
	}

	if containsURL(existing, article.URL) {
		if err := s.backend.RemoveBookmark(ctx, session.Token, article.URL); err != nil {
			return ports.ToggleResult{}, err
		}
		s.logger.Info().Str("url", article.URL).Msg("bookmark removed")
		return ports.ToggleResult{Bookmarked: false, Count: len(existing) - 1}, nil
	}

	if err := s.backend.AddBookmark(ctx, session.Token, domain.BookmarkOf(article)); err != nil {
		return ports.ToggleResult{}, err
	}
	s.logger.Info().Str("url", article.URL).Msg("bookmark added")
	return ports.ToggleResult{Bookmarked: true, Count: len(existing) + 1}, nil
}

func containsURL(bookmarks []domain.Bookmark, url string) bool {
	for _, b := range bookmarks {
		if b.URL == url {
			return true
		}
	}
	return false
}
