package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// fakeGateway lets each test wire up just the backend calls it expects;
// anything else fails the call loudly.
type fakeGateway struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
	registerFn func(ctx context.Context, name, email, password string) error
	newsFn     func(ctx context.Context, q ports.NewsQuery) ([]domain.Article, error)
	listFn     func(ctx context.Context, token string) ([]domain.Bookmark, error)
	addFn      func(ctx context.Context, token string, b domain.Bookmark) error
	removeFn   func(ctx context.Context, token, url string) error
}

func (g *fakeGateway) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if g.loginFn == nil {
		return nil, "", errors.New("unexpected Login call")
	}
	return g.loginFn(ctx, email, password)
}

func (g *fakeGateway) Register(ctx context.Context, name, email, password string) error {
	if g.registerFn == nil {
		return errors.New("unexpected Register call")
	}
	return g.registerFn(ctx, name, email, password)
}

func (g *fakeGateway) FetchNews(ctx context.Context, q ports.NewsQuery) ([]domain.Article, error) {
	if g.newsFn == nil {
		return nil, errors.New("unexpected FetchNews call")
	}
	return g.newsFn(ctx, q)
}

func (g *fakeGateway) ListBookmarks(ctx context.Context, token string) ([]domain.Bookmark, error) {
	if g.listFn == nil {
		return nil, errors.New("unexpected ListBookmarks call")
	}
	return g.listFn(ctx, token)
}

func (g *fakeGateway) AddBookmark(ctx context.Context, token string, b domain.Bookmark) error {
	if g.addFn == nil {
		return errors.New("unexpected AddBookmark call")
	}
	return g.addFn(ctx, token, b)
}

func (g *fakeGateway) RemoveBookmark(ctx context.Context, token, url string) error {
	if g.removeFn == nil {
		return errors.New("unexpected RemoveBookmark call")
	}
	return g.removeFn(ctx, token, url)
}

// memorySessionStore implements ports.SessionStore over a shared map so a
// second store (or service) instance over the same backing simulates a
// process restart.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]domain.Session)}
}

func (s *memorySessionStore) Create(_ context.Context, session *domain.Session) error {
	if session.User == nil || session.Token == "" {
		return domain.ErrIncompleteSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *memorySessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := session
	return &clone, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func TestAuthService_Login_PersistsCompleteSession(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(_ context.Context, email, password string) (*domain.User, string, error) {
			if email != "a@x.com" || password != "pw" {
				t.Fatalf("credentials not forwarded: %s/%s", email, password)
			}
			return &domain.User{Name: "A", Email: email}, "tok123", nil
		},
	}
	store := newMemorySessionStore()
	svc := NewAuthService(gateway, store, zerolog.Nop())

	session, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.User == nil || session.Token != "tok123" {
		t.Fatalf("incomplete session returned: %+v", session)
	}

	stored, err := store.Find(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if stored.Token != "tok123" || stored.User == nil {
		t.Fatalf("persisted session incomplete: %+v", stored)
	}
}

func TestAuthService_Login_BackendFailureLeavesNoSession(t *testing.T) {
	backendErr := errors.New("invalid email or password")
	gateway := &fakeGateway{
		loginFn: func(context.Context, string, string) (*domain.User, string, error) {
			return nil, "", backendErr
		},
	}
	store := newMemorySessionStore()
	svc := NewAuthService(gateway, store, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@x.com", "bad"); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if store.len() != 0 {
		t.Fatalf("no session should be persisted on failure")
	}
}

func TestAuthService_Login_EmptyInputNeverCallsBackend(t *testing.T) {
	svc := NewAuthService(&fakeGateway{}, newMemorySessionStore(), zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SessionSurvivesRestart(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(_ context.Context, email, _ string) (*domain.User, string, error) {
			return &domain.User{Name: "A", Email: email}, "tok123", nil
		},
	}
	store := newMemorySessionStore()
	svc := NewAuthService(gateway, store, zerolog.Nop())

	session, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	// A fresh service over the same backing store is a reload.
	restarted := NewAuthService(&fakeGateway{}, store, zerolog.Nop())
	restored, err := restarted.CurrentSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("session lost across restart: %v", err)
	}
	if restored.Token != "tok123" {
		t.Fatalf("expected token tok123 after restart, got %q", restored.Token)
	}
	if restored.User == nil || restored.User.Email != "a@x.com" {
		t.Fatalf("expected full identity after restart, got %+v", restored.User)
	}
}

func TestAuthService_Logout_RemovesStoredSession(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(_ context.Context, email, _ string) (*domain.User, string, error) {
			return &domain.User{Name: "A", Email: email}, "tok123", nil
		},
	}
	store := newMemorySessionStore()
	svc := NewAuthService(gateway, store, zerolog.Nop())

	session, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if store.len() != 0 {
		t.Fatalf("storage should contain no session entry after logout")
	}
	if _, err := svc.CurrentSession(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}

	// Logging out twice is not an error.
	if err := svc.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("repeated Logout returned error: %v", err)
	}
}

func TestAuthService_Register_ForwardsToBackend(t *testing.T) {
	called := false
	gateway := &fakeGateway{
		registerFn: func(_ context.Context, name, email, password string) error {
			called = true
			if name != "A" || email != "a@x.com" || password != "pw1234" {
				t.Fatalf("form not forwarded: %s/%s/%s", name, email, password)
			}
			return nil
		},
	}
	svc := NewAuthService(gateway, newMemorySessionStore(), zerolog.Nop())

	if err := svc.Register(context.Background(), "A", "a@x.com", "pw1234"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !called {
		t.Fatalf("backend Register not called")
	}
}
