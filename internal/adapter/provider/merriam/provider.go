package merriam

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
	"github.com/heartmarshall/wordofday-backend/internal/provider"
)

// Provider fetches synonym data from the Merriam-Webster thesaurus API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given thesaurus base URL and API key.
func NewProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "merriam"),
	}
}

// Lookup fetches the thesaurus entry for a word. The word is lowercased
// before the request; the API treats entries as case-insensitive.
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.ThesaurusResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(strings.ToLower(word)) + "?key=" + url.QueryEscape(p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("thesaurus: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "thesaurus request failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("thesaurus: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thesaurus: lookup %q: status %d: %w", word, resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("thesaurus: read body: %w", err)
	}

	result, err := parseResponse(body)
	if err != nil {
		return nil, fmt.Errorf("thesaurus: lookup %q: %w", word, err)
	}

	p.log.DebugContext(ctx, "thesaurus response",
		slog.String("word", word),
		slog.Int("entries", len(result.Entries)),
		slog.Int("suggestions", len(result.Suggestions)),
	)

	return result, nil
}
