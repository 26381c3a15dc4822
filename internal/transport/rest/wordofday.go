package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
	"github.com/heartmarshall/wordofday-backend/pkg/ctxutil"
)

// selectionService defines the minimal interface the handler needs from the
// word-of-the-day service.
type selectionService interface {
	WordOfTheDay(ctx context.Context) (*domain.WordEntry, error)
}

// WordHandler serves the word-of-the-day endpoint.
type WordHandler struct {
	svc selectionService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc selectionService, logger *slog.Logger) *WordHandler {
	return &WordHandler{
		svc: svc,
		log: logger.With(slog.String("handler", "wordofday")),
	}
}

// wordResponse is the JSON response for GET /api/word/today.
type wordResponse struct {
	SelectedWord domain.WordEntry `json:"selectedWord"`
}

// Today returns today's selection, generating it if the cached one is stale.
func (h *WordHandler) Today(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.WordOfTheDay(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "word of the day failed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wordResponse{SelectedWord: *entry})
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps pipeline errors to an HTTP status and a short message that
// does not leak upstream details.
func writeError(w http.ResponseWriter, err error) {
	msg := "internal error"
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		msg = "upstream dictionary unavailable"
	case errors.Is(err, domain.ErrCacheUnavailable):
		msg = "cache unavailable"
	case errors.Is(err, domain.ErrResolutionExhausted), errors.Is(err, domain.ErrNoUsableSense):
		msg = "could not select a word"
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msg})
}
