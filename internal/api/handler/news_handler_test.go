package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/api/middleware"
	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

func homeContext(t *testing.T, renderer *recordingRenderer, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Renderer = renderer
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNewsHandler_Home_DefaultsQuery(t *testing.T) {
	var seen ports.NewsQuery
	news := &stubNewsService{
		newsFn: func(_ context.Context, q ports.NewsQuery) ([]domain.Article, error) {
			seen = q
			return []domain.Article{{Title: "a", URL: "https://news.example/a"}}, nil
		},
	}
	h := NewNewsHandler(news, &stubBookmarkService{})

	c, rec := homeContext(t, &recordingRenderer{}, "/")
	if err := h.Home(c); err != nil {
		t.Fatalf("Home returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen.Mode != "top-headlines" || seen.Category != "general" || seen.Country != "in" || seen.Language != "en" {
		t.Fatalf("unexpected default query: %+v", seen)
	}
}

func TestNewsHandler_Home_SearchModeForwardsFilters(t *testing.T) {
	var seen ports.NewsQuery
	news := &stubNewsService{
		newsFn: func(_ context.Context, q ports.NewsQuery) ([]domain.Article, error) {
			seen = q
			return []domain.Article{{Title: "a", URL: "https://news.example/a"}}, nil
		},
	}
	h := NewNewsHandler(news, &stubBookmarkService{})

	c, _ := homeContext(t, &recordingRenderer{}, "/?mode=search&keyword=cricket&date=2025-01-02")
	if err := h.Home(c); err != nil {
		t.Fatalf("Home returned error: %v", err)
	}

	if seen.Mode != "search" || seen.Keyword != "cricket" || seen.Date != "2025-01-02" {
		t.Fatalf("search filters not forwarded: %+v", seen)
	}
}

func TestNewsHandler_Home_MarksBookmarkedArticles(t *testing.T) {
	news := &stubNewsService{
		newsFn: func(context.Context, ports.NewsQuery) ([]domain.Article, error) {
			return []domain.Article{
				{Title: "a", URL: "https://news.example/a"},
				{Title: "b", URL: "https://news.example/b"},
			}, nil
		},
	}
	bookmarks := &stubBookmarkService{
		listFn: func(context.Context, *domain.Session) ([]domain.Bookmark, error) {
			return []domain.Bookmark{{URL: "https://news.example/a"}}, nil
		},
	}
	h := NewNewsHandler(news, bookmarks)

	renderer := &recordingRenderer{}
	c, _ := homeContext(t, renderer, "/")
	c.Set(middleware.SessionContextKey, bookmarksSession(t))

	if err := h.Home(c); err != nil {
		t.Fatalf("Home returned error: %v", err)
	}

	data, ok := renderer.data.(homeData)
	if !ok {
		t.Fatalf("unexpected render data type %T", renderer.data)
	}
	if !data.Bookmarked["https://news.example/a"] || data.Bookmarked["https://news.example/b"] {
		t.Fatalf("unexpected bookmark marks: %+v", data.Bookmarked)
	}
	if data.User == nil || data.User.Email != "a@x.com" {
		t.Fatalf("header identity missing: %+v", data.User)
	}
}

func TestNewsHandler_Home_BookmarkFailureStillRendersNews(t *testing.T) {
	news := &stubNewsService{
		newsFn: func(context.Context, ports.NewsQuery) ([]domain.Article, error) {
			return []domain.Article{{Title: "a", URL: "https://news.example/a"}}, nil
		},
	}
	bookmarks := &stubBookmarkService{
		listFn: func(context.Context, *domain.Session) ([]domain.Bookmark, error) {
			return nil, errors.New("Failed to fetch bookmarks")
		},
	}
	h := NewNewsHandler(news, bookmarks)

	renderer := &recordingRenderer{}
	c, rec := homeContext(t, renderer, "/")
	c.Set(middleware.SessionContextKey, bookmarksSession(t))

	if err := h.Home(c); err != nil {
		t.Fatalf("Home returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("bookmark decoration failure must not fail the page, got %d", rec.Code)
	}

	data := renderer.data.(homeData)
	if len(data.Articles) != 1 {
		t.Fatalf("articles must render, got %+v", data.Articles)
	}
}

func TestNewsHandler_Home_BackendFailureRendersErrorPage(t *testing.T) {
	news := &stubNewsService{
		newsFn: func(context.Context, ports.NewsQuery) ([]domain.Article, error) {
			return nil, errors.New("Failed to fetch news")
		},
	}
	h := NewNewsHandler(news, &stubBookmarkService{})

	renderer := &recordingRenderer{}
	c, rec := homeContext(t, renderer, "/")
	if err := h.Home(c); err != nil {
		t.Fatalf("Home returned error: %v", err)
	}

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for a transport failure, got %d", rec.Code)
	}
	data := renderer.data.(homeData)
	if data.Error != "Failed to fetch news" {
		t.Fatalf("failure message not surfaced: %q", data.Error)
	}
}

func TestNewsHandler_Home_EmptyResultExplainsItself(t *testing.T) {
	news := &stubNewsService{
		newsFn: func(context.Context, ports.NewsQuery) ([]domain.Article, error) {
			return nil, nil
		},
	}
	h := NewNewsHandler(news, &stubBookmarkService{})

	renderer := &recordingRenderer{}
	c, rec := homeContext(t, renderer, "/?category=science")
	if err := h.Home(c); err != nil {
		t.Fatalf("Home returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data := renderer.data.(homeData)
	if data.Error != "No news found for the selected filters." {
		t.Fatalf("empty result message missing, got %q", data.Error)
	}
}
