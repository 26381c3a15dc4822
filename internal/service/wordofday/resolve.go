package wordofday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
	"github.com/heartmarshall/wordofday-backend/internal/metrics"
	"github.com/heartmarshall/wordofday-backend/internal/provider"
)

// resolve looks the word up in the thesaurus, following spelling suggestions
// when the word has no direct entry. The thesaurus does not know every word
// the dictionary can hand out, so a suggestion-shaped response re-queries
// with the first suggested string, up to maxDepth lookups.
func (s *Service) resolve(ctx context.Context, word string) (*domain.WordEntry, error) {
	current := word

	for depth := 0; depth < s.maxDepth; depth++ {
		result, err := s.thesaurus.Lookup(ctx, current)
		metrics.UpstreamRequest("thesaurus", err)
		if err != nil {
			return nil, fmt.Errorf("thesaurus lookup %q: %w", current, err)
		}

		if len(result.Entries) == 0 {
			if len(result.Suggestions) == 0 {
				return nil, fmt.Errorf("thesaurus lookup %q: %w", current, domain.ErrNoUsableSense)
			}
			next := result.Suggestions[0]
			s.log.DebugContext(ctx, "no thesaurus entry, following suggestion",
				slog.String("word", current),
				slog.String("suggestion", next),
			)
			current = next
			continue
		}

		valid := validEntries(result.Entries)
		if len(valid) == 0 {
			return nil, fmt.Errorf("thesaurus lookup %q: %w", current, domain.ErrNoUsableSense)
		}

		chosen := valid[s.pick(len(valid))]
		return buildEntry(chosen), nil
	}

	return nil, fmt.Errorf("gave up after %d lookups starting from %q: %w", s.maxDepth, word, domain.ErrResolutionExhausted)
}

// validEntries filters to entries whose headword token is a plain
// alphanumeric word; multi-word phrases are not usable as the day's word.
func validEntries(entries []provider.ThesaurusEntry) []provider.ThesaurusEntry {
	var valid []provider.ThesaurusEntry
	for _, e := range entries {
		if domain.IsPlainWord(e.Headword) {
			valid = append(valid, e)
		}
	}
	return valid
}

// buildEntry maps a thesaurus entry to the domain model. Candidate words are
// the headword plus the synonym/similar/related lists, deduplicated by
// normalized form; candidates that appear inside the definition or example
// text are dropped so they cannot give the answer away. The headword itself
// is always kept.
func buildEntry(e provider.ThesaurusEntry) *domain.WordEntry {
	entry := &domain.WordEntry{
		ID:         e.ID,
		Definition: e.Definition,
		Example:    e.Example,
		WordType:   wordType(e),
		Words:      make(map[string]domain.CandidateWord),
	}

	headKey := domain.NormalizeWord(e.Headword)
	entry.Words[headKey] = domain.CandidateWord{Word: e.Headword}

	defLower := strings.ToLower(e.Definition)
	exampleLower := strings.ToLower(e.Example)

	candidates := make([]string, 0, len(e.Synonyms)+len(e.Similar)+len(e.Related))
	candidates = append(candidates, e.Synonyms...)
	candidates = append(candidates, e.Similar...)
	candidates = append(candidates, e.Related...)

	for _, w := range candidates {
		if !domain.IsPlainWord(w) {
			continue
		}
		key := domain.NormalizeWord(w)
		if key == "" {
			continue
		}
		if _, seen := entry.Words[key]; seen {
			continue
		}
		if strings.Contains(defLower, key) || strings.Contains(exampleLower, key) {
			continue
		}
		entry.Words[key] = domain.CandidateWord{Word: w}
	}

	return entry
}

// wordType joins a sense qualifier (from labels like "plural of die") to the
// grammatical class, e.g. "plural | noun".
func wordType(e provider.ThesaurusEntry) string {
	for _, label := range e.SenseLabels {
		if qualifier, _, found := strings.Cut(label, " of "); found {
			return qualifier + " | " + e.PartOfSpeech
		}
	}
	return e.PartOfSpeech
}
