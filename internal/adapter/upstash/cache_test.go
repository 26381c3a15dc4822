package upstash

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCache(baseURL string) *Cache {
	return New(baseURL, "test-token", "word-of-the-day", 5*time.Second, newTestLogger())
}

func TestCache_Get_Hit(t *testing.T) {
	t.Parallel()

	record := `{"selectedWord":{"id":"u-1","definition":"feeling pleasure","example":"","wordType":"adjective","words":{"glad":{"word":"glad","score":0}}},"createdAt":"2024-03-01T10:00:00-05:00"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get/word-of-the-day" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"result": record})
	}))
	defer srv.Close()

	c := newTestCache(srv.URL)
	sel, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel == nil {
		t.Fatal("expected non-nil selection")
	}
	if sel.SelectedWord.ID != "u-1" {
		t.Errorf("ID = %q, want %q", sel.SelectedWord.ID, "u-1")
	}
	if _, ok := sel.SelectedWord.Words["glad"]; !ok {
		t.Errorf("Words = %v, want key %q", sel.SelectedWord.Words, "glad")
	}
	if got := sel.CreatedAt.UTC().Hour(); got != 15 {
		t.Errorf("CreatedAt UTC hour = %d, want 15", got)
	}
}

func TestCache_Get_NullResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	c := newTestCache(srv.URL)
	sel, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != nil {
		t.Fatalf("expected nil for null result, got %+v", sel)
	}
}

func TestCache_Get_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestCache(srv.URL)
	sel, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != nil {
		t.Fatalf("expected nil for 404, got %+v", sel)
	}
}

func TestCache_Get_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestCache(srv.URL)
	_, err := c.Get(context.Background())
	if !errors.Is(err, domain.ErrCacheUnavailable) {
		t.Fatalf("error = %v, want ErrCacheUnavailable", err)
	}
}

func TestCache_Set_Success(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/set/word-of-the-day" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"result":"OK"}`))
	}))
	defer srv.Close()

	sel := &domain.Selection{
		SelectedWord: domain.WordEntry{
			ID:       "u-1",
			WordType: "noun",
			Words:    map[string]domain.CandidateWord{"dawn": {Word: "dawn"}},
		},
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	c := newTestCache(srv.URL)
	if err := c.Set(context.Background(), sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var roundTripped domain.Selection
	if err := json.Unmarshal(gotBody, &roundTripped); err != nil {
		t.Fatalf("body is not a selection record: %v", err)
	}
	if roundTripped.SelectedWord.ID != "u-1" {
		t.Errorf("ID = %q, want %q", roundTripped.SelectedWord.ID, "u-1")
	}
	if !roundTripped.CreatedAt.Equal(sel.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", roundTripped.CreatedAt, sel.CreatedAt)
	}
}

func TestCache_Set_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestCache(srv.URL)
	err := c.Set(context.Background(), &domain.Selection{})
	if !errors.Is(err, domain.ErrCacheUnavailable) {
		t.Fatalf("error = %v, want ErrCacheUnavailable", err)
	}
}
