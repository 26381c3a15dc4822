package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordofday-backend/internal/config"
	"github.com/heartmarshall/wordofday-backend/internal/metrics"
	"github.com/heartmarshall/wordofday-backend/internal/transport/middleware"
)

// NewRouter assembles the HTTP routes and the middleware chain.
func NewRouter(
	word *WordHandler,
	health *HealthHandler,
	logger *slog.Logger,
	cors config.CORSConfig,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/word/today", word.Today)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)
	mux.Handle("GET /metrics", metrics.Handler())

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(cors),
	)

	return chain(mux)
}
