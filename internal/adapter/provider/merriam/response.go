package merriam

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/wordofday-backend/internal/provider"
)

// The thesaurus answers with one of two shapes: an array of rich sense
// entries for a known word, or an array of bare suggestion strings when the
// word has no direct entry. Elements are probed individually so a mixed or
// partially malformed response degrades instead of failing the lookup.

// apiEntry is a single sense entry from the thesaurus response.
type apiEntry struct {
	Meta *apiMeta `json:"meta"`
	FL   string   `json:"fl"`
	SLS  []string `json:"sls"`
	Def  []apiDef `json:"def"`
}

// apiMeta identifies the entry. ID is the headword token (annotated for
// homographs, e.g. "happy:1"), UUID the stable sense identifier.
type apiMeta struct {
	ID   string `json:"id"`
	UUID string `json:"uuid"`
}

type apiDef struct {
	Sseq [][]apiSensePair `json:"sseq"`
}

// apiSensePair is a ["sense", {...}] tuple from the sense sequence.
type apiSensePair []json.RawMessage

type apiSense struct {
	Dt      []apiDtItem    `json:"dt"`
	SynList [][]apiWordRef `json:"syn_list"`
	SimList [][]apiWordRef `json:"sim_list"`
	RelList [][]apiWordRef `json:"rel_list"`
}

// apiDtItem is a [tag, payload] tuple; the payload type depends on the tag
// ("text" carries a string, "vis" an array of usage examples).
type apiDtItem []json.RawMessage

type apiWordRef struct {
	Wd string `json:"wd"`
}

type apiVis struct {
	T string `json:"t"`
}

var (
	markupToken = regexp.MustCompile(`\{/?\w+\}`)
	emphasized  = regexp.MustCompile(`\{it\}\w+\{/it\}`)
)

// parseResponse splits a raw thesaurus response into parsed sense entries
// and/or suggestion strings.
func parseResponse(body []byte) (*provider.ThesaurusResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	result := &provider.ThesaurusResult{}
	for _, el := range elements {
		var suggestion string
		if err := json.Unmarshal(el, &suggestion); err == nil {
			result.Suggestions = append(result.Suggestions, suggestion)
			continue
		}

		var entry apiEntry
		if err := json.Unmarshal(el, &entry); err != nil {
			continue
		}
		if entry.Meta == nil || entry.Meta.ID == "" {
			continue
		}
		result.Entries = append(result.Entries, mapEntry(entry))
	}

	return result, nil
}

// mapEntry converts an apiEntry into a provider.ThesaurusEntry, extracting
// the first sense's definition, example, and candidate word lists.
func mapEntry(e apiEntry) provider.ThesaurusEntry {
	entry := provider.ThesaurusEntry{
		ID:           e.Meta.UUID,
		Headword:     e.Meta.ID,
		PartOfSpeech: e.FL,
		SenseLabels:  e.SLS,
	}

	sense := firstSense(e.Def)
	if sense == nil {
		return entry
	}

	for _, item := range sense.Dt {
		switch item.tag() {
		case "text":
			if entry.Definition != "" {
				continue
			}
			var text string
			if err := json.Unmarshal(item[1], &text); err == nil {
				entry.Definition = stripMarkup(text)
			}
		case "vis":
			if entry.Example != "" {
				continue
			}
			var examples []apiVis
			if err := json.Unmarshal(item[1], &examples); err == nil && len(examples) > 0 {
				entry.Example = blankEmphasis(examples[0].T)
			}
		}
	}

	entry.Synonyms = flatten(sense.SynList)
	entry.Similar = flatten(sense.SimList)
	entry.Related = flatten(sense.RelList)

	return entry
}

// firstSense walks def[0].sseq[0][0] and returns the sense payload, or nil
// if the structure is absent.
func firstSense(defs []apiDef) *apiSense {
	if len(defs) == 0 || len(defs[0].Sseq) == 0 || len(defs[0].Sseq[0]) == 0 {
		return nil
	}
	pair := defs[0].Sseq[0][0]
	if len(pair) < 2 {
		return nil
	}

	var sense apiSense
	if err := json.Unmarshal(pair[1], &sense); err != nil {
		return nil
	}
	return &sense
}

func (d apiDtItem) tag() string {
	if len(d) < 2 {
		return ""
	}
	var tag string
	if err := json.Unmarshal(d[0], &tag); err != nil {
		return ""
	}
	return tag
}

// stripMarkup removes inline {token} markup from definition text.
func stripMarkup(s string) string {
	return strings.TrimSpace(markupToken.ReplaceAllString(s, ""))
}

// blankEmphasis substitutes a blanked-out placeholder for the emphasized
// headword in an example sentence, so the example does not give the word away.
func blankEmphasis(s string) string {
	return emphasized.ReplaceAllString(s, "____")
}

func flatten(lists [][]apiWordRef) []string {
	var words []string
	for _, list := range lists {
		for _, ref := range list {
			words = append(words, ref.Wd)
		}
	}
	return words
}
