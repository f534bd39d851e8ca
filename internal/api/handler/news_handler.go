package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

type NewsHandler struct {
	news      ports.NewsService
	bookmarks ports.BookmarkService
}

func NewNewsHandler(news ports.NewsService, bookmarks ports.BookmarkService) *NewsHandler {
	return &NewsHandler{news: news, bookmarks: bookmarks}
}

// newsCategories are the topics the backend's news proxy understands.
var newsCategories = []string{
	"general", "world", "nation", "business", "technology",
	"entertainment", "sports", "science", "health",
}

type homeData struct {
	User       *domain.User
	Articles   []domain.Article
	Bookmarked map[string]bool
	Query      ports.NewsQuery
	Categories []string
	Error      string
}

// Home renders the front page: top headlines by default, or search mode with
// keyword/date filters. For logged-in users the current bookmark set marks
// already-saved articles so their controls render disabled.
func (h *NewsHandler) Home(c echo.Context) error {
	query := newsQueryFrom(c)
	data := homeData{
		User:       currentUser(c),
		Query:      query,
		Categories: newsCategories,
		Bookmarked: map[string]bool{},
	}

	articles, err := h.news.FetchNews(c.Request().Context(), query)
	if err != nil {
		data.Error = err.Error()
		return c.Render(statusFor(err), "home.html", data)
	}
	if len(articles) == 0 {
		data.Error = "No news found for the selected filters."
	}
	data.Articles = articles

	// Bookmark state is decoration; a failure here must not take down the
	// news listing.
	if session := currentSession(c); session != nil {
		if saved, err := h.bookmarks.List(c.Request().Context(), session); err == nil {
			for _, b := range saved {
				data.Bookmarked[b.URL] = true
			}
		}
	}

	return c.Render(http.StatusOK, "home.html", data)
}

func newsQueryFrom(c echo.Context) ports.NewsQuery {
	q := ports.NewsQuery{
		Mode:     c.QueryParam("mode"),
		Category: c.QueryParam("category"),
		Country:  c.QueryParam("country"),
		Language: c.QueryParam("language"),
		Keyword:  c.QueryParam("keyword"),
		Date:     c.QueryParam("date"),
	}
	if q.Mode != "search" {
		q.Mode = "top-headlines"
	}
	if q.Category == "" {
		q.Category = "general"
	}
	if q.Country == "" {
		q.Country = "in"
	}
	if q.Language == "" {
		q.Language = "en"
	}
	return q
}
