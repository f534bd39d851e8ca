package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thesarvanews/news-frontend/internal/api/middleware"
	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/infrastructure/backend"
)

// messageResponse is the canonical JSON error envelope. It mirrors the
// backend's own {"message": ...} shape so the page scripts handle both the
// same way.
type messageResponse struct {
	Message string `json:"message"`
}

type errorPageData struct {
	User    *domain.User
	Code    int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain and backend errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Answers /api/* routes with the {"message": ...} envelope and
//     everything else with the rendered error page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			_ = c.JSON(code, messageResponse{Message: msg})
			return
		}

		var user *domain.User
		if s := middleware.SessionFrom(c); s != nil {
			user = s.User
		}
		_ = c.Render(code, "error.html", errorPageData{User: user, Code: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Backend rejections carry their own status and human-readable message.
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Please login to bookmark articles."
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "Your session has expired. Please login again."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
