package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/wordofday-backend/internal/config"
	"github.com/heartmarshall/wordofday-backend/internal/domain"
)

func corsTestConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins: "*",
		AllowedMethods: "GET,OPTIONS",
		AllowedHeaders: "Content-Type",
		MaxAge:         86400,
	}
}

type selectionServiceMock struct {
	entry *domain.WordEntry
	err   error
}

func (m *selectionServiceMock) WordOfTheDay(_ context.Context) (*domain.WordEntry, error) {
	return m.entry, m.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToday_Success(t *testing.T) {
	t.Parallel()

	entry := &domain.WordEntry{
		ID:         "u-glad",
		Definition: "feeling pleasure",
		WordType:   "adjective",
		Words: map[string]domain.CandidateWord{
			"glad":  {Word: "glad", Score: 4.2},
			"happy": {Word: "happy", Score: 6.1},
		},
	}
	h := NewWordHandler(&selectionServiceMock{entry: entry}, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/word/today", nil)
	rec := httptest.NewRecorder()

	h.Today(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var resp wordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.SelectedWord.ID != "u-glad" {
		t.Errorf("expected entry id 'u-glad', got %q", resp.SelectedWord.ID)
	}
	if len(resp.SelectedWord.Words) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(resp.SelectedWord.Words))
	}
	if resp.SelectedWord.Words["glad"].Score != 4.2 {
		t.Errorf("expected score 4.2, got %v", resp.SelectedWord.Words["glad"].Score)
	}
}

func TestToday_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "upstream unavailable",
			err:     domain.ErrUpstreamUnavailable,
			wantMsg: "upstream dictionary unavailable",
		},
		{
			name:    "cache unavailable",
			err:     domain.ErrCacheUnavailable,
			wantMsg: "cache unavailable",
		},
		{
			name:    "resolution exhausted",
			err:     domain.ErrResolutionExhausted,
			wantMsg: "could not select a word",
		},
		{
			name:    "no usable sense",
			err:     domain.ErrNoUsableSense,
			wantMsg: "could not select a word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewWordHandler(&selectionServiceMock{err: tt.err}, newTestLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/word/today", nil)
			rec := httptest.NewRecorder()

			h.Today(rec, req)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected status 500, got %d", rec.Code)
			}

			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, resp.Error)
			}
		})
	}
}

func TestToday_ErrorBodyDoesNotLeakDetails(t *testing.T) {
	t.Parallel()

	wrapped := &selectionServiceMock{
		err: &wrappedErr{msg: "GET https://wordsapiv1.p.rapidapi.com/words: 500", inner: domain.ErrUpstreamUnavailable},
	}
	h := NewWordHandler(wrapped, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/word/today", nil)
	rec := httptest.NewRecorder()

	h.Today(rec, req)

	if strings.Contains(rec.Body.String(), "rapidapi") {
		t.Errorf("response body leaks upstream detail: %s", rec.Body.String())
	}
}

type wrappedErr struct {
	msg   string
	inner error
}

func (e *wrappedErr) Error() string { return e.msg }
func (e *wrappedErr) Unwrap() error { return e.inner }

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	word := NewWordHandler(&selectionServiceMock{entry: &domain.WordEntry{}}, newTestLogger())
	health := NewHealthHandler(&storePingerMock{}, "test")
	router := NewRouter(word, health, newTestLogger(), corsTestConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/word/today", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestRouter_SetsRequestIDHeader(t *testing.T) {
	t.Parallel()

	word := NewWordHandler(&selectionServiceMock{entry: &domain.WordEntry{}}, newTestLogger())
	health := NewHealthHandler(&storePingerMock{}, "test")
	router := NewRouter(word, health, newTestLogger(), corsTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header on response")
	}
}
