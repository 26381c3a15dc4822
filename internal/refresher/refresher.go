package refresher

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const runTimeout = time.Minute

// Refresher runs the selection pipeline on a cron schedule so the cache is
// warm before the first request of the day arrives.
type Refresher struct {
	cron *cron.Cron
	log  *slog.Logger
}

// New creates a Refresher that fires refresh on the given standard cron
// schedule, evaluated in loc. The schedule must already be validated.
func New(schedule string, loc *time.Location, refresh func(ctx context.Context) error, logger *slog.Logger) (*Refresher, error) {
	log := logger.With(slog.String("service", "refresher"))

	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := refresh(ctx); err != nil {
			log.ErrorContext(ctx, "scheduled refresh failed", slog.String("error", err.Error()))
			return
		}
		log.InfoContext(ctx, "scheduled refresh completed")
	})
	if err != nil {
		return nil, err
	}

	return &Refresher{cron: c, log: log}, nil
}

// Start launches the scheduler in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
	r.log.Info("refresher started")
}

// Stop halts the scheduler and waits for a running job to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.log.Info("refresher stopped")
}
