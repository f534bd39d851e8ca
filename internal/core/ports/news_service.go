package ports

import (
	"context"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

type NewsService interface {
	// FetchNews returns articles for the query with HTML stripped from the
	// text fields.
	FetchNews(ctx context.Context, q NewsQuery) ([]domain.Article, error)
}
