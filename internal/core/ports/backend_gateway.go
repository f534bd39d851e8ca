package ports

import (
	"context"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

// NewsQuery carries the filters forwarded to GET /api/news.
type NewsQuery struct {
	// Mode is "top-headlines" or "search".
	Mode     string
	Category string
	Country  string
	Language string
	// Keyword and Date only apply in search mode.
	Keyword string
	Date    string
	// Max limits the number of articles; 0 means backend default.
	Max int
}

// BackendGateway is the outbound port to the remote news/bookmark API.
// The token is the opaque bearer credential; implementations attach it
// verbatim and never inspect it.
type BackendGateway interface {
	FetchNews(ctx context.Context, q NewsQuery) ([]domain.Article, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Register(ctx context.Context, name, email, password string) error
	ListBookmarks(ctx context.Context, token string) ([]domain.Bookmark, error)
	AddBookmark(ctx context.Context, token string, bookmark domain.Bookmark) error
	RemoveBookmark(ctx context.Context, token, url string) error
}
