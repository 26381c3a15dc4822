package wordofday

import (
	"context"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
	"github.com/heartmarshall/wordofday-backend/internal/metrics"
)

// notFoundScore is assigned when the dictionary has no entry (or no
// frequency data) for a candidate.
const notFoundScore = 5.0

// scoreCandidates annotates each candidate with a rarity-inverted frequency
// score, one dictionary lookup per candidate, all in parallel. The map is
// snapshotted up front and scores are merged back only after every lookup
// has finished, so the goroutines never touch the map itself. A failed
// lookup leaves that candidate at score 0 and never aborts the others.
func (s *Service) scoreCandidates(ctx context.Context, words map[string]domain.CandidateWord) {
	keys := make([]string, 0, len(words))
	for key := range words {
		keys = append(keys, key)
	}

	scores := make([]float64, len(keys))
	g, ctx := errgroup.WithContext(ctx)

	for i, key := range keys {
		cand := words[key]
		g.Go(func() error {
			result, err := s.words.Lookup(ctx, cand.Word)
			metrics.UpstreamRequest("wordsapi", err)
			if err != nil {
				s.log.WarnContext(ctx, "frequency lookup failed, keeping zero score",
					slog.String("word", cand.Word),
					slog.String("error", err.Error()),
				)
				return nil
			}

			score := notFoundScore
			if result != nil && result.Frequency != nil {
				score = frequencyScore(*result.Frequency)
			}
			scores[i] = score
			return nil
		})
	}

	g.Wait() //nolint:errcheck // goroutines never return errors

	for i, key := range keys {
		cand := words[key]
		cand.Score = scores[i]
		words[key] = cand
	}
}

// frequencyScore inverts a Zipf-like frequency so that higher means more
// common, rounded to one decimal and clamped to [0, 7].
func frequencyScore(frequency float64) float64 {
	score := math.Round((7-frequency)*10) / 10
	return math.Min(math.Max(score, 0), 7)
}
