package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionRepository persists sessions in Redis, one key per session. Writes
// complete before the call returns, so storage always reflects the last
// finished login or logout even across a process restart.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository wraps the given Redis client. Sessions expire after
// ttl; a non-positive ttl means they live until logout.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

type storedSession struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	CreatedAt int64        `json:"created_at"`
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if session.User == nil || session.Token == "" {
		return domain.ErrIncompleteSession
	}

	doc := storedSession{
		User:      session.User,
		Token:     session.Token,
		CreatedAt: session.CreatedAt.Unix(),
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	var ttl time.Duration
	if r.ttl > 0 {
		ttl = r.ttl
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var doc storedSession
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if doc.User == nil || doc.Token == "" {
		// A half-written entry would break the session invariant; treat it
		// as absent.
		return nil, domain.ErrSessionNotFound
	}

	return &domain.Session{
		ID:        id,
		User:      doc.User,
		Token:     doc.Token,
		CreatedAt: time.Unix(doc.CreatedAt, 0).UTC(),
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
