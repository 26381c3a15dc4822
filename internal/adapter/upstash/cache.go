// Package upstash stores the daily selection in an Upstash-style Redis REST
// endpoint: GET /get/<key> and POST /set/<key> with bearer-token auth.
// Values are stored as raw JSON strings; the GET response wraps them in a
// {"result": <string|null>} envelope.
package upstash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
)

// Cache reads and writes the single selection record.
type Cache struct {
	baseURL    string
	token      string
	key        string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Cache for the given REST endpoint, bearer token, and key name.
func New(baseURL, token, key string, timeout time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		baseURL:    baseURL,
		token:      token,
		key:        key,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "upstash"),
	}
}

type getResponse struct {
	Result *string `json:"result"`
}

// Get reads the cached selection. Returns nil, nil when the key is absent
// (HTTP 404 or a null result).
func (c *Cache) Get(ctx context.Context) (*domain.Selection, error) {
	reqURL := c.baseURL + "/get/" + url.PathEscape(c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cache: get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cache: get: status %d: %w", resp.StatusCode, domain.ErrCacheUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cache: read body: %w", err)
	}

	var envelope getResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("cache: decode envelope: %w", err)
	}
	if envelope.Result == nil {
		return nil, nil
	}

	var sel domain.Selection
	if err := json.Unmarshal([]byte(*envelope.Result), &sel); err != nil {
		return nil, fmt.Errorf("cache: decode record: %w", err)
	}

	c.log.DebugContext(ctx, "cache record read",
		slog.String("key", c.key),
		slog.Time("created_at", sel.CreatedAt),
	)

	return &sel, nil
}

// Set writes the selection record, overwriting any previous value.
func (c *Cache) Set(ctx context.Context, sel *domain.Selection) error {
	payload, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("cache: encode record: %w", err)
	}

	reqURL := c.baseURL + "/set/" + url.PathEscape(c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("cache: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cache: set: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cache: set: status %d: %w", resp.StatusCode, domain.ErrCacheUnavailable)
	}

	c.log.InfoContext(ctx, "cache record written",
		slog.String("key", c.key),
		slog.Time("created_at", sel.CreatedAt),
	)

	return nil
}

// Ping probes the store for the health endpoint. An absent key is healthy.
func (c *Cache) Ping(ctx context.Context) error {
	_, err := c.Get(ctx)
	return err
}
