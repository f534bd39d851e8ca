package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// AuthService implements login, registration and session lifecycle. The
// backend owns credential verification; this side only binds the returned
// identity and token into a persisted session.
type AuthService struct {
	backend ports.BackendGateway
	store   ports.SessionStore
	logger  zerolog.Logger
}

func NewAuthService(backend ports.BackendGateway, store ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, store: store, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, token, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(uuid.NewString(), user, token)
	if err != nil {
		return nil, err
	}

	// Persist before returning so a crash after this point still leaves a
	// usable session behind the cookie.
	if err := s.store.Create(ctx, session); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("user logged in")
	return session, nil
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return domain.ErrInvalidCredentials
	}
	if err := s.backend.Register(ctx, name, email, password); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("user registered")
	return nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sessionID); err != nil && err != domain.ErrSessionNotFound {
		return err
	}
	return nil
}

func (s *AuthService) CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.store.Find(ctx, sessionID)
}
