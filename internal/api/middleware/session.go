package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// SessionContextKey is where LoadSession stores the resolved session.
const SessionContextKey = "session"

// LoadSession resolves the session cookie to its stored session on every
// request and injects it into the echo context. A missing, unknown, or
// expired cookie leaves the request anonymous; this middleware never rejects.
func LoadSession(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := auth.CurrentSession(c.Request().Context(), cookie.Value)
			if err != nil {
				// Stale cookie: the stored session is gone (logout or TTL).
				return next(c)
			}

			c.Set(SessionContextKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the session injected by LoadSession, or nil.
func SessionFrom(c echo.Context) *domain.Session {
	session, _ := c.Get(SessionContextKey).(*domain.Session)
	return session
}
