package wordsapi

// apiWord is the subset of a WordsAPI word response this service needs.
// The full response also carries results, syllables, and pronunciation,
// which are ignored.
type apiWord struct {
	Word      string   `json:"word"`
	Frequency *float64 `json:"frequency"`
}
