package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/api/middleware"
	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/infrastructure/backend"
)

// currentSession returns the session resolved by the LoadSession middleware,
// or nil for anonymous requests.
func currentSession(c echo.Context) *domain.Session {
	return middleware.SessionFrom(c)
}

// currentUser is a nil-safe accessor for the logged-in identity, used to
// populate the shared page header.
func currentUser(c echo.Context) *domain.User {
	if s := currentSession(c); s != nil {
		return s.User
	}
	return nil
}

// statusFor maps a failed backend call to the HTTP status of the page that
// reports it. Backend statuses pass through; transport and decode failures
// read as a bad gateway.
func statusFor(err error) int {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}
