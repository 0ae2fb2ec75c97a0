// https://rapidapi.com/dpventures/api/wordsapi
package rapidapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Response struct {
	Word          string        `json:"word"`
	Syllables     Syllable      `json:"syllables"`
	Frequency     float64       `json:"frequency"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Results       []Result      `json:"results"`
}

type Syllable struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type Pronunciation struct {
	All string `json:"all"`
}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	// pronunciation can be either a struct or a simple string
	if len(data) > 0 && data[0] == '{' {
		var all struct {
			All string `json:"all"`
		}
		if err := json.Unmarshal(data, &all); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		p.All = all.All
		return nil
	}
	var all string
	if err := json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	p.All = all
	return nil
}

type Result struct {
	Definition   string   `json:"definition"`
	Derivation   []string `json:"derivation,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms,omitempty"`
	SimilarTo    []string `json:"similarTo,omitempty"`
	TypeOf       []string `json:"typeOf,omitempty"`
	Examples     []string `json:"examples"`
}

// PrimaryResult returns the first result for the part of speech, or the first result
// when partOfSpeech is empty or has no match.
func (r Response) PrimaryResult(partOfSpeech string) (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	partOfSpeech = strings.ToLower(strings.TrimSpace(partOfSpeech))
	if partOfSpeech != "" {
		for _, result := range r.Results {
			if strings.EqualFold(result.PartOfSpeech, partOfSpeech) {
				return result, true
			}
		}
	}
	return r.Results[0], true
}

// Format renders the response as plain text with one block per meaning.
func (r Response) Format() string {
	meanings := make([]string, 0, len(r.Results))
	for i, result := range r.Results {
		lines := make([]string, 0)
		lines = append(lines, fmt.Sprintf("%d. [%s] %s", i+1, result.PartOfSpeech, result.Definition))
		if len(result.Examples) > 0 {
			lines = append(lines, fmt.Sprintf("   Examples: %s", strings.Join(result.Examples, ", ")))
		}
		if len(result.Synonyms) > 0 {
			lines = append(lines, fmt.Sprintf("   Synonyms: %s", strings.Join(result.Synonyms, ", ")))
		}
		if len(result.Antonyms) > 0 {
			lines = append(lines, fmt.Sprintf("   Antonyms: %s", strings.Join(result.Antonyms, ", ")))
		}
		meanings = append(meanings, strings.Join(lines, "\n"))
	}

	builder := strings.Builder{}
	if r.Pronunciation.All != "" {
		builder.WriteString(fmt.Sprintf("%s /%s/\n", r.Word, r.Pronunciation.All))
	} else {
		builder.WriteString(r.Word + "\n")
	}
	builder.WriteString(strings.Join(meanings, "\n"))
	return builder.String()
}
