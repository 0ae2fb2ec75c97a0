package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Dictionary looks a word up.
type Dictionary interface {
	Lookup(ctx context.Context, word string) (rapidapi.Response, error)
}

// Enrich fills the empty descriptive fields of item from a dictionary response.
// Fields the learner already filled are kept. It reports whether anything changed.
func Enrich(item *vocabulary.Item, response rapidapi.Response) bool {
	changed := false
	fill := func(dst *string, value string) {
		if strings.TrimSpace(*dst) == "" && strings.TrimSpace(value) != "" {
			*dst = strings.TrimSpace(value)
			changed = true
		}
	}
	fillList := func(dst *vocabulary.StringList, values []string) {
		if len(*dst) == 0 && len(values) > 0 {
			list := vocabulary.ParseStringList(strings.Join(values, ","))
			if len(list) > 0 {
				*dst = list
				changed = true
			}
		}
	}

	fill(&item.Phonetic, response.Pronunciation.All)
	result, ok := response.PrimaryResult(item.PartOfSpeech)
	if !ok {
		return changed
	}
	fill(&item.Definition, result.Definition)
	fill(&item.PartOfSpeech, result.PartOfSpeech)
	if len(result.Examples) > 0 {
		fill(&item.Example, result.Examples[0])
	}
	fillList(&item.Synonyms, result.Synonyms)
	fillList(&item.Antonyms, result.Antonyms)
	return changed
}

// Enricher enriches stored items with dictionary entries.
type Enricher struct {
	dictionary Dictionary
	items      vocabulary.Repository
}

func NewEnricher(dictionary Dictionary, items vocabulary.Repository) *Enricher {
	return &Enricher{
		dictionary: dictionary,
		items:      items,
	}
}

// EnrichWord looks up a stored word and saves the fields the dictionary adds.
func (e *Enricher) EnrichWord(ctx context.Context, learnerID, word string) (*vocabulary.Item, bool, error) {
	item, err := e.items.FindByWord(ctx, learnerID, word)
	if err != nil {
		return nil, false, fmt.Errorf("items.FindByWord(%s) > %w", word, err)
	}
	if item == nil {
		return nil, false, apperr.NotFound("vocabulary item %q not found", word)
	}

	response, err := e.dictionary.Lookup(ctx, item.Word)
	if err != nil {
		return nil, false, fmt.Errorf("dictionary.Lookup(%s) > %w", item.Word, err)
	}
	if !Enrich(item, response) {
		return item, false, nil
	}
	if err := e.items.Update(ctx, item); err != nil {
		return nil, false, fmt.Errorf("items.Update(%s) > %w", item.Word, err)
	}
	slog.Default().Debug("enriched vocabulary item", "word", item.Word, "id", item.ID)
	return item, true, nil
}
