package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

// PagesHandler serves the static informational pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

type pageData struct {
	User *domain.User
}

func (h *PagesHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", pageData{User: currentUser(c)})
}

func (h *PagesHandler) Services(c echo.Context) error {
	return c.Render(http.StatusOK, "services.html", pageData{User: currentUser(c)})
}
