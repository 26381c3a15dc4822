package wordofday

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
	"github.com/heartmarshall/wordofday-backend/internal/metrics"
)

// WordOfTheDay returns the current selection. A cached record that still
// covers today's local calendar day is returned as-is; otherwise a new
// selection is generated, persisted, and returned. Generation or persistence
// failures propagate — a stale record is never served as a fallback.
func (s *Service) WordOfTheDay(ctx context.Context) (*domain.WordEntry, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		metrics.SelectionServed("error")
		return nil, fmt.Errorf("read cache: %w", err)
	}

	now := s.now()
	if cached != nil && IsFresh(cached, now, s.loc) {
		s.log.DebugContext(ctx, "serving cached selection",
			slog.String("entry_id", cached.SelectedWord.ID),
			slog.Time("created_at", cached.CreatedAt),
		)
		metrics.SelectionServed("cache_hit")
		return &cached.SelectedWord, nil
	}

	entry, err := s.generate(ctx)
	if err != nil {
		metrics.SelectionServed("error")
		return nil, err
	}

	sel := &domain.Selection{
		SelectedWord: *entry,
		CreatedAt:    now.In(s.loc),
	}
	if err := s.cache.Set(ctx, sel); err != nil {
		metrics.SelectionServed("error")
		return nil, fmt.Errorf("persist selection: %w", err)
	}

	s.log.InfoContext(ctx, "new selection generated",
		slog.String("entry_id", entry.ID),
		slog.String("word_type", entry.WordType),
		slog.Int("candidates", len(entry.Words)),
	)
	metrics.SelectionServed("generated")

	return entry, nil
}

// generate runs the selection pipeline: random headword, thesaurus
// resolution, and (if enabled) candidate frequency scoring.
func (s *Service) generate(ctx context.Context) (*domain.WordEntry, error) {
	seed, err := s.words.RandomWord(ctx)
	metrics.UpstreamRequest("wordsapi", err)
	if err != nil {
		return nil, fmt.Errorf("random word: %w", err)
	}

	entry, err := s.resolve(ctx, seed.Word)
	if err != nil {
		return nil, err
	}

	if s.scoring {
		s.scoreCandidates(ctx, entry.Words)
	}

	return entry, nil
}
