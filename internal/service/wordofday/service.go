// Package wordofday implements the daily word selection pipeline:
// a read-through day-bucketed cache in front of a dictionary random-word
// provider, a recursive thesaurus resolver, and an optional frequency scorer.
package wordofday

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
	"github.com/heartmarshall/wordofday-backend/internal/provider"
)

const defaultMaxDepth = 5

type wordProvider interface {
	RandomWord(ctx context.Context) (*provider.WordResult, error)
	Lookup(ctx context.Context, word string) (*provider.WordResult, error)
}

type thesaurusProvider interface {
	Lookup(ctx context.Context, word string) (*provider.ThesaurusResult, error)
}

type selectionCache interface {
	Get(ctx context.Context) (*domain.Selection, error)
	Set(ctx context.Context, sel *domain.Selection) error
}

// Config carries the selection parameters.
type Config struct {
	// Location is the timezone whose calendar days bucket selections.
	Location *time.Location
	// MaxResolutionDepth bounds suggestion-chasing thesaurus lookups.
	MaxResolutionDepth int
	// ScoringEnabled turns on per-candidate frequency scoring.
	ScoringEnabled bool
}

// Service selects, scores, and caches the word of the day.
type Service struct {
	log       *slog.Logger
	words     wordProvider
	thesaurus thesaurusProvider
	cache     selectionCache
	loc       *time.Location
	maxDepth  int
	scoring   bool

	// Injected time and random pick, overridden in tests.
	now  func() time.Time
	pick func(n int) int
}

// NewService creates the selection service.
func NewService(
	logger *slog.Logger,
	words wordProvider,
	thesaurus thesaurusProvider,
	cache selectionCache,
	cfg Config,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	depth := cfg.MaxResolutionDepth
	if depth <= 0 {
		depth = defaultMaxDepth
	}

	return &Service{
		log:       logger.With("service", "wordofday"),
		words:     words,
		thesaurus: thesaurus,
		cache:     cache,
		loc:       loc,
		maxDepth:  depth,
		scoring:   cfg.ScoringEnabled,
		now:       time.Now,
		pick:      rand.IntN,
	}
}
