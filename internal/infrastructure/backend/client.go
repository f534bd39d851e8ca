package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/thesarvanews/news-frontend/internal/api/metrics"
	"github.com/thesarvanews/news-frontend/internal/core/domain"
	"github.com/thesarvanews/news-frontend/internal/core/ports"
)

// maxResponseBytes caps how much of a backend response is read.
const maxResponseBytes = 1 << 20

// Client is the HTTP adapter for the remote news/bookmark API. Authorized
// calls attach the opaque bearer token verbatim; the token is never parsed
// or validated on this side.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewClient builds a Client for the backend at baseURL. All calls share the
// limiter so this front-end cannot exhaust the backend's upstream quota.
func NewClient(baseURL string, timeout time.Duration, limiter *rate.Limiter, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		logger:  logger,
	}
}

func (c *Client) FetchNews(ctx context.Context, q ports.NewsQuery) ([]domain.Article, error) {
	values := url.Values{}
	values.Set("mode", q.Mode)
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Country != "" {
		values.Set("country", q.Country)
	}
	if q.Language != "" {
		values.Set("language", q.Language)
	}
	if q.Mode == "search" {
		if q.Keyword != "" {
			values.Set("keyword", q.Keyword)
		}
		if q.Date != "" {
			values.Set("date", q.Date)
		}
	}
	if q.Max > 0 {
		values.Set("max", strconv.Itoa(q.Max))
	}

	var out struct {
		Articles []domain.Article `json:"articles"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/news", "", values, nil, &out, "Failed to fetch news"); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		User  *domain.User `json:"user"`
		Token string       `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", "", nil, body, &out, "Login failed"); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", err
	}
	if out.User == nil || out.Token == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", fmt.Errorf("Login failed: backend returned an incomplete response")
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return out.User, out.Token, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/register", "", nil, body, nil, "Registration failed")
}

func (c *Client) ListBookmarks(ctx context.Context, token string) ([]domain.Bookmark, error) {
	var out []domain.Bookmark
	if err := c.do(ctx, http.MethodGet, "/api/bookmarks", token, nil, nil, &out, "Failed to fetch bookmarks"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddBookmark(ctx context.Context, token string, bookmark domain.Bookmark) error {
	return c.do(ctx, http.MethodPost, "/api/bookmarks", token, nil, bookmark, nil, "Failed to add bookmark")
}

func (c *Client) RemoveBookmark(ctx context.Context, token, articleURL string) error {
	body := map[string]string{"url": articleURL}
	return c.do(ctx, http.MethodDelete, "/api/bookmarks", token, nil, body, nil, "Failed to delete bookmark")
}

// do performs one backend round trip. Non-2xx responses come back as
// *APIError carrying the backend's message; transport failures wrap the
// fallback text so every caller surfaces something readable.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any, fallback string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(path, "network_error").Inc()
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(path, "network_error").Inc()
		return fmt.Errorf("%s: %w", fallback, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.BackendRequestsTotal.WithLabelValues(path, "http_error").Inc()
		c.logger.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("backend returned error status")
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw, fallback)}
	}

	metrics.BackendRequestsTotal.WithLabelValues(path, "ok").Inc()

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", fallback, err)
		}
	}
	return nil
}

// errorMessage pulls the backend's {"message": ...} text when present.
func errorMessage(raw []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return fallback
}
