package exercise

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// DefaultMaxDistractors is the number of wrong options shown next to the correct one.
const DefaultMaxDistractors = 3

// Generator builds exercise questions. It is safe for concurrent use.
type Generator struct {
	rnd            *lockedRand
	maxDistractors int
	newID          func() string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand sets the random source used for shuffling and distractor choice.
func WithRand(rnd *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rnd = newLockedRand(rnd)
	}
}

// WithMaxDistractors overrides the number of distractors per question.
func WithMaxDistractors(n int) GeneratorOption {
	return func(g *Generator) {
		if n >= 0 {
			g.maxDistractors = n
		}
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		maxDistractors: DefaultMaxDistractors,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = newLockedRand(nil)
	}
	return g
}

// Generate builds a question of the given type for item, drawing distractors from pool.
// The pool may contain the item itself; it is never used as its own distractor.
func (g *Generator) Generate(questionType Type, item vocabulary.Item, pool []vocabulary.Item) (Question, error) {
	if strings.TrimSpace(item.Word) == "" {
		return Question{}, apperr.Validation("vocabulary item %d has no word", item.ID)
	}
	if meaningOf(item) == "" {
		return Question{}, apperr.Validation("word %q has neither a definition nor a translation", item.Word)
	}
	others := otherItems(item, pool)

	var question Question
	switch questionType {
	case TypeWordToMeaning:
		question = g.wordToMeaning(item, others)
	case TypeMeaningToWord:
		question = g.meaningToWord(item, others)
	case TypeSentenceCompletion:
		question = g.sentenceCompletion(item, others)
	case TypeSynonymMatch:
		if len(item.Synonyms) == 0 {
			question = g.wordToMeaning(item, others)
		} else {
			question = g.synonymMatch(item, others)
		}
	case TypeContextUsage:
		question = g.contextUsage(item, others)
	default:
		return Question{}, apperr.Validation("unknown exercise type %q", questionType)
	}

	question.ID = g.newID()
	question.VocabularyID = item.ID
	question.Word = item.Word
	question.Explanation = explanation(item)
	question.Source = SourceLocal
	return question, nil
}

func (g *Generator) wordToMeaning(item vocabulary.Item, others []vocabulary.Item) Question {
	correct := meaningOf(item)
	candidates := make([]string, 0, len(others))
	for _, other := range others {
		candidates = append(candidates, meaningOf(other))
	}
	return Question{
		Type:          TypeWordToMeaning,
		Prompt:        fmt.Sprintf("What does %q mean?", item.Word),
		CorrectAnswer: correct,
		Options:       g.options(correct, g.pick(correct, nil, candidates, nil)),
	}
}

func (g *Generator) meaningToWord(item vocabulary.Item, others []vocabulary.Item) Question {
	preferred, rest := g.splitWords(item, others, false)
	return Question{
		Type:          TypeMeaningToWord,
		Prompt:        fmt.Sprintf("Which word means %q?", meaningOf(item)),
		CorrectAnswer: item.Word,
		Options:       g.options(item.Word, g.pick(item.Word, nil, preferred, rest)),
	}
}

func (g *Generator) sentenceCompletion(item vocabulary.Item, others []vocabulary.Item) Question {
	sentence, ok := MaskWord(item.Example, item.Word)
	if !ok {
		sentence = fmt.Sprintf("%s means %q.", Blank, meaningOf(item))
	}
	preferred, rest := g.splitWords(item, others, true)
	return Question{
		Type:          TypeSentenceCompletion,
		Prompt:        "Fill in the blank: " + sentence,
		CorrectAnswer: item.Word,
		Options:       g.options(item.Word, g.pick(item.Word, nil, preferred, rest)),
	}
}

func (g *Generator) synonymMatch(item vocabulary.Item, others []vocabulary.Item) Question {
	correct := item.Synonyms[0]
	exclude := append([]string{item.Word}, item.Synonyms...)
	preferred, rest := g.splitWords(item, others, true)
	return Question{
		Type:          TypeSynonymMatch,
		Prompt:        fmt.Sprintf("Which word is a synonym of %q?", item.Word),
		CorrectAnswer: correct,
		Options:       g.options(correct, g.pick(correct, exclude, preferred, rest)),
	}
}

func (g *Generator) contextUsage(item vocabulary.Item, others []vocabulary.Item) Question {
	prompt := fmt.Sprintf("Which word fits this description: %s?", meaningOf(item))
	if sentence, ok := MaskWord(item.Example, item.Word); ok {
		prompt += "\nExample: " + sentence
	}
	preferred, rest := g.splitWords(item, others, false)
	return Question{
		Type:          TypeContextUsage,
		Prompt:        prompt,
		CorrectAnswer: item.Word,
		Options:       g.options(item.Word, g.pick(item.Word, nil, preferred, rest)),
	}
}

// splitWords returns the words of others, those sharing item's part of speech first when byPartOfSpeech is set.
func (g *Generator) splitWords(item vocabulary.Item, others []vocabulary.Item, byPartOfSpeech bool) (preferred, rest []string) {
	pos := normalizeAnswer(item.PartOfSpeech)
	for _, other := range others {
		if byPartOfSpeech && pos != "" && normalizeAnswer(other.PartOfSpeech) == pos {
			preferred = append(preferred, other.Word)
			continue
		}
		rest = append(rest, other.Word)
	}
	return preferred, rest
}

// pick chooses up to maxDistractors distinct values from preferred, then rest, in random order
// within each group. Values equal to correct or to any excluded value are skipped.
func (g *Generator) pick(correct string, exclude []string, preferred, rest []string) []string {
	seen := map[string]bool{normalizeAnswer(correct): true}
	for _, e := range exclude {
		seen[normalizeAnswer(e)] = true
	}

	var picked []string
	for _, group := range [][]string{preferred, rest} {
		candidates := append([]string(nil), group...)
		g.rnd.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, candidate := range candidates {
			if len(picked) >= g.maxDistractors {
				return picked
			}
			key := normalizeAnswer(candidate)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			picked = append(picked, strings.TrimSpace(candidate))
		}
	}
	return picked
}

func (g *Generator) options(correct string, distractors []string) []string {
	options := append([]string{correct}, distractors...)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// otherItems drops the target from the pool, matched by id and by word.
func otherItems(item vocabulary.Item, pool []vocabulary.Item) []vocabulary.Item {
	word := normalizeAnswer(item.Word)
	others := make([]vocabulary.Item, 0, len(pool))
	for _, candidate := range pool {
		if (item.ID != 0 && candidate.ID == item.ID) || normalizeAnswer(candidate.Word) == word {
			continue
		}
		others = append(others, candidate)
	}
	return others
}

func meaningOf(item vocabulary.Item) string {
	if definition := strings.TrimSpace(item.Definition); definition != "" {
		return definition
	}
	return strings.TrimSpace(item.Translation)
}

func explanation(item vocabulary.Item) string {
	if item.PartOfSpeech == "" {
		return fmt.Sprintf("%s: %s", item.Word, meaningOf(item))
	}
	return fmt.Sprintf("%s (%s): %s", item.Word, item.PartOfSpeech, meaningOf(item))
}

// MaskWord replaces every whole-word, case-insensitive occurrence of word in sentence with Blank.
// It reports false when the sentence does not contain the word.
func MaskWord(sentence, word string) (string, bool) {
	word = strings.TrimSpace(word)
	if strings.TrimSpace(sentence) == "" || word == "" {
		return sentence, false
	}
	pattern, err := regexp.Compile(`(?i)(^|[^\p{L}\p{N}_])(` + regexp.QuoteMeta(word) + `)($|[^\p{L}\p{N}_])`)
	if err != nil {
		return sentence, false
	}
	if !pattern.MatchString(sentence) {
		return sentence, false
	}
	// Adjacent matches share a separator, so replace until stable.
	masked := sentence
	for {
		next := pattern.ReplaceAllString(masked, "${1}"+Blank+"${3}")
		if next == masked {
			return masked, true
		}
		masked = next
	}
}
