package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wordofday-backend/internal/adapter/provider/merriam"
	"github.com/heartmarshall/wordofday-backend/internal/adapter/provider/wordsapi"
	"github.com/heartmarshall/wordofday-backend/internal/adapter/upstash"
	"github.com/heartmarshall/wordofday-backend/internal/config"
	"github.com/heartmarshall/wordofday-backend/internal/refresher"
	"github.com/heartmarshall/wordofday-backend/internal/service/wordofday"
	"github.com/heartmarshall/wordofday-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// providers and the selection service, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Selection.Timezone),
	)

	words := wordsapi.NewProvider(
		cfg.WordsAPI.BaseURL,
		cfg.WordsAPI.APIKey,
		cfg.WordsAPI.APIHost,
		cfg.WordsAPI.Timeout,
		logger,
	)
	thesaurus := merriam.NewProvider(
		cfg.Thesaurus.BaseURL,
		cfg.Thesaurus.APIKey,
		cfg.Thesaurus.Timeout,
		logger,
	)
	cache := upstash.New(
		cfg.Cache.BaseURL,
		cfg.Cache.Token,
		cfg.Cache.Key,
		cfg.Cache.Timeout,
		logger,
	)

	svc := wordofday.NewService(logger, words, thesaurus, cache, wordofday.Config{
		Location:           cfg.Selection.Location,
		MaxResolutionDepth: cfg.Selection.MaxResolutionDepth,
		ScoringEnabled:     cfg.Selection.ScoringEnabled,
	})

	if cfg.Refresh.Enabled {
		ref, err := refresher.New(cfg.Refresh.Schedule, cfg.Selection.Location, func(ctx context.Context) error {
			_, err := svc.WordOfTheDay(ctx)
			return err
		}, logger)
		if err != nil {
			return fmt.Errorf("refresher: %w", err)
		}
		ref.Start()
		defer ref.Stop()
	}

	router := rest.NewRouter(
		rest.NewWordHandler(svc, logger),
		rest.NewHealthHandler(cache, BuildVersion()),
		logger,
		cfg.CORS,
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
