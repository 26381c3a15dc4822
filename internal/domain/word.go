package domain

import "time"

// WordEntry is one selected thesaurus sense: a headword's definition, usage
// example, grammatical class, and the candidate words associated with it.
// An entry is built once per calendar day and is read-only after construction.
type WordEntry struct {
	// ID is a stable sense identifier from the thesaurus, distinct from the
	// headword spelling (it disambiguates homographs).
	ID         string `json:"id"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	// WordType is the grammatical class, optionally prefixed with a sense
	// qualifier joined by " | " (e.g. "plural | noun").
	WordType string `json:"wordType"`
	// Words maps normalized candidate words to their scored form. It always
	// contains at least the normalized headword.
	Words map[string]CandidateWord `json:"words"`
}

// CandidateWord is a synonym/similar/related word eligible for frequency
// scoring. Score stays 0 until the scorer runs; a scored value is
// rarity-inverted: higher means more common.
type CandidateWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Selection is the cached word-of-the-day record. One record exists per
// cache key; a new day's selection overwrites it.
type Selection struct {
	SelectedWord WordEntry `json:"selectedWord"`
	CreatedAt    time.Time `json:"createdAt"`
}
