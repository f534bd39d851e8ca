package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

// stubAuth resolves exactly one session ID.
type stubAuth struct {
	sessionID string
	session   *domain.Session
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.Session, error) {
	return nil, errors.New("unexpected Login call")
}

func (s *stubAuth) Register(context.Context, string, string, string) error {
	return errors.New("unexpected Register call")
}

func (s *stubAuth) Logout(context.Context, string) error {
	return errors.New("unexpected Logout call")
}

func (s *stubAuth) CurrentSession(_ context.Context, id string) (*domain.Session, error) {
	if s.session != nil && id == s.sessionID {
		return s.session, nil
	}
	return nil, domain.ErrSessionNotFound
}

func runLoadSession(t *testing.T, auth *stubAuth, cookie *http.Cookie) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoadSession(auth, "sarvanews_session")(func(c echo.Context) error {
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("LoadSession returned error: %v", err)
	}
	return c
}

func TestLoadSession_ResolvesValidCookie(t *testing.T) {
	session, err := domain.NewSession("sid-1", &domain.User{Name: "A", Email: "a@x.com"}, "tok123")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	auth := &stubAuth{sessionID: "sid-1", session: session}

	c := runLoadSession(t, auth, &http.Cookie{Name: "sarvanews_session", Value: "sid-1"})

	got := SessionFrom(c)
	if got == nil || got.Token != "tok123" {
		t.Fatalf("expected resolved session, got %+v", got)
	}
}

func TestLoadSession_MissingCookieStaysAnonymous(t *testing.T) {
	c := runLoadSession(t, &stubAuth{}, nil)
	if SessionFrom(c) != nil {
		t.Fatalf("request without cookie must stay anonymous")
	}
}

func TestLoadSession_StaleCookieStaysAnonymous(t *testing.T) {
	c := runLoadSession(t, &stubAuth{}, &http.Cookie{Name: "sarvanews_session", Value: "gone"})
	if SessionFrom(c) != nil {
		t.Fatalf("stale cookie must stay anonymous")
	}
}

func TestRequireSession_RedirectsAnonymousToLogin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	invoked := false
	handler := RequireSession()(func(c echo.Context) error {
		invoked = true
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("RequireSession returned error: %v", err)
	}

	if invoked {
		t.Fatalf("protected handler must not run without a session")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireSession_PassesAuthenticatedRequest(t *testing.T) {
	session, err := domain.NewSession("sid-1", &domain.User{Name: "A", Email: "a@x.com"}, "tok123")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionContextKey, session)

	invoked := false
	handler := RequireSession()(func(c echo.Context) error {
		invoked = true
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("RequireSession returned error: %v", err)
	}
	if !invoked {
		t.Fatalf("authenticated request must reach the handler")
	}
}

func TestRequireSessionJSON_Returns401WithLoginPrompt(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks/toggle", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireSessionJSON()(func(c echo.Context) error {
		t.Fatal("handler must not run without a session")
		return nil
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
	if msg, _ := httpErr.Message.(string); msg != "Please login to bookmark articles." {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}
