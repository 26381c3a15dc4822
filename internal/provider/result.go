package provider

// WordResult is the structured result from a dictionary API lookup.
type WordResult struct {
	Word string
	// Frequency is a Zipf-like corpus frequency (roughly 1–7).
	// Nil when the API carries no frequency data for the word.
	Frequency *float64
}

// ThesaurusResult is the structured result from a thesaurus API lookup.
// Exactly one of Entries/Suggestions is normally populated: a known word
// yields sense entries, an unknown one yields spelling suggestions.
type ThesaurusResult struct {
	Entries     []ThesaurusEntry
	Suggestions []string
}

// ThesaurusEntry is one parsed sense entry from the thesaurus.
type ThesaurusEntry struct {
	// ID is the stable sense identifier (distinct from the headword).
	ID string
	// Headword is the entry's identifying token; may carry homograph
	// annotations like "happy:1" for secondary senses.
	Headword     string
	PartOfSpeech string
	// SenseLabels are raw subject/status labels (e.g. "plural of princess").
	SenseLabels []string
	Definition  string
	Example     string
	Synonyms    []string
	Similar     []string
	Related     []string
}
