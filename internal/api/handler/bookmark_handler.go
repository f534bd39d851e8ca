package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/api/metrics"
	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// latestNewsCount is how many headlines the bookmarks page shows alongside
// the saved list.
const latestNewsCount = 5

type BookmarkHandler struct {
	bookmarks ports.BookmarkService
	news      ports.NewsService
}

func NewBookmarkHandler(bookmarks ports.BookmarkService, news ports.NewsService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks, news: news}
}

type bookmarksData struct {
	User       *domain.User
	Bookmarks  []domain.Bookmark
	Error      string
	News       []domain.Article
	NewsError  string
	Bookmarked map[string]bool
}

// Page renders the saved bookmarks plus a short latest-news strip. The two
// fetches fail independently: a bookmark failure yields an error with an
// empty list (this call is the list's only source), a news failure leaves
// the bookmarks intact.
func (h *BookmarkHandler) Page(c echo.Context) error {
	session := currentSession(c)
	data := h.pageData(c, session)

	status := http.StatusOK
	if data.Error != "" && len(data.Bookmarks) == 0 {
		status = http.StatusBadGateway
	}
	return c.Render(status, "bookmarks.html", data)
}

func (h *BookmarkHandler) pageData(c echo.Context, session *domain.Session) bookmarksData {
	data := bookmarksData{
		User:       session.User,
		Bookmarked: map[string]bool{},
	}

	saved, err := h.bookmarks.List(c.Request().Context(), session)
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Bookmarks = saved
		for _, b := range saved {
			data.Bookmarked[b.URL] = true
		}
	}

	news, err := h.news.FetchNews(c.Request().Context(), ports.NewsQuery{
		Mode:     "top-headlines",
		Language: "en",
		Country:  "us",
		Max:      latestNewsCount,
	})
	if err != nil {
		data.NewsError = err.Error()
	} else {
		data.News = news
	}

	return data
}

type bookmarkForm struct {
	Title       string `form:"title"       validate:"required"`
	URL         string `form:"url"         validate:"required,url"`
	Description string `form:"description"`
	Image       string `form:"image"`
	PublishedAt string `form:"publishedAt"`
	Source      string `form:"source"`
}

func (f bookmarkForm) article() domain.Article {
	return domain.Article{
		Title:       f.Title,
		URL:         f.URL,
		Description: f.Description,
		Image:       f.Image,
		PublishedAt: f.PublishedAt,
		Source:      domain.ArticleSource{Name: f.Source},
	}
}

// Add saves an article posted from the bookmarks page. An already-saved URL
// is a no-op. Failures re-render the page with the backend's message while
// the previously saved list stays visible.
func (h *BookmarkHandler) Add(c echo.Context) error {
	session := currentSession(c)

	var form bookmarkForm
	if err := c.Bind(&form); err != nil {
		return h.renderWithError(c, session, "invalid form submission", http.StatusBadRequest)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderWithError(c, session, err.Error(), http.StatusBadRequest)
	}

	if err := h.bookmarks.Add(c.Request().Context(), session, form.article()); err != nil {
		metrics.BookmarkActionsTotal.WithLabelValues("add", "failure").Inc()
		return h.renderWithError(c, session, err.Error(), statusFor(err))
	}

	metrics.BookmarkActionsTotal.WithLabelValues("add", "success").Inc()
	return c.Redirect(http.StatusSeeOther, "/bookmarks")
}

// Remove deletes a bookmark by its article URL.
func (h *BookmarkHandler) Remove(c echo.Context) error {
	session := currentSession(c)

	articleURL := c.FormValue("url")
	if articleURL == "" {
		return h.renderWithError(c, session, "url is required", http.StatusBadRequest)
	}

	if err := h.bookmarks.Remove(c.Request().Context(), session, articleURL); err != nil {
		metrics.BookmarkActionsTotal.WithLabelValues("remove", "failure").Inc()
		return h.renderWithError(c, session, err.Error(), statusFor(err))
	}

	metrics.BookmarkActionsTotal.WithLabelValues("remove", "success").Inc()
	return c.Redirect(http.StatusSeeOther, "/bookmarks")
}

func (h *BookmarkHandler) renderWithError(c echo.Context, session *domain.Session, msg string, status int) error {
	data := h.pageData(c, session)
	data.Error = msg
	return c.Render(status, "bookmarks.html", data)
}

type toggleRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
}

type toggleResponse struct {
	Bookmarked bool `json:"bookmarked"`
	Count      int  `json:"count"`
}

// Toggle is the JSON endpoint behind the in-page bookmark buttons: it adds
// or removes by URL and reports the resulting state, so the page script
// always applies the outcome of the action it issued.
func (h *BookmarkHandler) Toggle(c echo.Context) error {
	session := currentSession(c)

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}

	article := domain.Article{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Image:       req.Image,
		PublishedAt: req.PublishedAt,
		Source:      domain.ArticleSource{Name: req.Source},
	}

	result, err := h.bookmarks.Toggle(c.Request().Context(), session, article)
	if err != nil {
		metrics.BookmarkActionsTotal.WithLabelValues("toggle", "failure").Inc()
		return err
	}

	metrics.BookmarkActionsTotal.WithLabelValues("toggle", "success").Inc()
	return c.JSON(http.StatusOK, toggleResponse{Bookmarked: result.Bookmarked, Count: result.Count})
}
