package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireSession gates protected page routes. Without a session the request
// is redirected to the login page and the protected handler never runs. The
// decision is recomputed on every request from the stored session alone, so
// a logout takes effect on the very next navigation.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFrom(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// RequireSessionJSON gates the in-page JSON endpoints. Instead of a redirect
// it answers 401 with a login prompt, before any backend call is attempted.
func RequireSessionJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFrom(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please login to bookmark articles.")
			}
			return next(c)
		}
	}
}
