package service

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// NewsService fetches articles from the backend and strips any markup from
// the text fields. Upstream news providers occasionally ship HTML fragments
// in titles and descriptions; the pages render plain text only.
type NewsService struct {
	backend ports.BackendGateway
	policy  *bluemonday.Policy
	logger  zerolog.Logger
}

func NewNewsService(backend ports.BackendGateway, logger zerolog.Logger) *NewsService {
	return &NewsService{
		backend: backend,
		policy:  bluemonday.StrictPolicy(),
		logger:  logger,
	}
}

func (s *NewsService) FetchNews(ctx context.Context, q ports.NewsQuery) ([]domain.Article, error) {
	if q.Mode == "" {
		q.Mode = "top-headlines"
	}

	articles, err := s.backend.FetchNews(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Str("mode", q.Mode).Msg("news fetch failed")
		return nil, err
	}

	for i := range articles {
		articles[i].Title = s.plainText(articles[i].Title)
		articles[i].Description = s.plainText(articles[i].Description)
		articles[i].Source.Name = s.plainText(articles[i].Source.Name)
	}

	s.logger.Debug().Int("count", len(articles)).Str("mode", q.Mode).Msg("news fetched")
	return articles, nil
}

// plainText removes every tag and resolves entities, leaving display text.
func (s *NewsService) plainText(in string) string {
	if in == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(in)))
}
