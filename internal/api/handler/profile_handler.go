package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

type ProfileHandler struct {
	bookmarks ports.BookmarkService
}

func NewProfileHandler(bookmarks ports.BookmarkService) *ProfileHandler {
	return &ProfileHandler{bookmarks: bookmarks}
}

type profileData struct {
	User      *domain.User
	Bookmarks []domain.Bookmark
	Error     string
}

// Page renders the identity card plus the bookmark grid. The route is behind
// the auth gate, so the session is always present here.
func (h *ProfileHandler) Page(c echo.Context) error {
	session := currentSession(c)
	data := profileData{User: session.User}

	saved, err := h.bookmarks.List(c.Request().Context(), session)
	if err != nil {
		data.Error = err.Error()
		return c.Render(statusFor(err), "profile.html", data)
	}
	data.Bookmarks = saved

	return c.Render(http.StatusOK, "profile.html", data)
}
