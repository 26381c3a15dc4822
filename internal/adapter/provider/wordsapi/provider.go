package wordsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
	"github.com/heartmarshall/wordofday-backend/internal/provider"
)

// letterPattern restricts random words to bare tokens of 3–15 word characters.
const letterPattern = `^\w{3,15}$`

// Provider fetches words from the WordsAPI dictionary (RapidAPI).
type Provider struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given WordsAPI base URL and
// RapidAPI credentials.
func NewProvider(baseURL, apiKey, apiHost string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiHost:    apiHost,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "wordsapi"),
	}
}

// RandomWord fetches one random headword matching the default shape filter.
func (p *Provider) RandomWord(ctx context.Context) (*provider.WordResult, error) {
	q := url.Values{}
	q.Set("random", "true")
	q.Set("letterPattern", letterPattern)
	reqURL := p.baseURL + "/?" + q.Encode()

	resp, err := p.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("wordsapi: random word: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordsapi: random word: status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	result, err := decodeWord(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wordsapi: random word: %w", err)
	}

	p.log.DebugContext(ctx, "random word fetched", slog.String("word", result.Word))
	return result, nil
}

// Lookup fetches metadata for an exact word. Returns nil, nil if the word
// has no entry (HTTP 404); callers degrade rather than fail.
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.WordResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	resp, err := p.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("wordsapi: lookup %q: %w", word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordsapi: lookup %q: status %d: %w", word, resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	result, err := decodeWord(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wordsapi: lookup %q: %w", word, err)
	}

	return result, nil
}

func (p *Provider) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", p.apiKey)
	req.Header.Set("X-RapidAPI-Host", p.apiHost)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "wordsapi request failed",
			slog.String("url", reqURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func decodeWord(r io.Reader) (*provider.WordResult, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var w apiWord
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	return &provider.WordResult{Word: w.Word, Frequency: w.Frequency}, nil
}
