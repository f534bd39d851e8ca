package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// SessionCookie describes the cookie that keys the server-side session.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (sc SessionCookie) issue(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     sc.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(sc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (sc SessionCookie) clear() *http.Cookie {
	return &http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

type AuthHandler struct {
	auth   ports.AuthService
	cookie SessionCookie
}

func NewAuthHandler(auth ports.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Name     string `form:"name"     validate:"required"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type authPageData struct {
	User    *domain.User
	Error   string
	Success string
	Email   string
	Name    string
}

// LoginPage renders the login form. A logged-in user is sent home instead.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if currentSession(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "login.html", authPageData{})
}

// Login verifies the form against the backend and, on success, issues the
// session cookie and redirects home. Failures re-render the form with the
// backend's message.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", authPageData{Error: "invalid form submission"})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", authPageData{Error: err.Error(), Email: form.Email})
	}

	session, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		return c.Render(statusFor(err), "login.html", authPageData{Error: err.Error(), Email: form.Email})
	}

	c.SetCookie(h.cookie.issue(session.ID))
	return c.Redirect(http.StatusSeeOther, "/")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if currentSession(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "register.html", authPageData{})
}

// Register creates the account on the backend. Registration does not log the
// user in; on success the form re-renders with a prompt to do so.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", authPageData{Error: "invalid form submission"})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", authPageData{
			Error: err.Error(), Name: form.Name, Email: form.Email,
		})
	}

	if err := h.auth.Register(c.Request().Context(), form.Name, form.Email, form.Password); err != nil {
		return c.Render(statusFor(err), "register.html", authPageData{
			Error: err.Error(), Name: form.Name, Email: form.Email,
		})
	}

	return c.Render(http.StatusOK, "register.html", authPageData{
		Success: "Registered successfully! You can now log in.",
	})
}

// Logout destroys the stored session, clears the cookie and redirects home.
// It never fails: a stale or absent session still results in a cleared cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := currentSession(c); session != nil {
		if err := h.auth.Logout(c.Request().Context(), session.ID); err != nil {
			return err
		}
	}
	c.SetCookie(h.cookie.clear())
	return c.Redirect(http.StatusSeeOther, "/")
}
