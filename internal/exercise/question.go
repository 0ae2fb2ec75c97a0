// Package exercise generates multiple-choice exercise questions for vocabulary items
// and selects the exercise type for a learner's level.
package exercise

import (
	"strings"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

// Type is the kind of exercise question.
type Type string

const (
	TypeWordToMeaning      Type = "word_to_meaning"
	TypeMeaningToWord      Type = "meaning_to_word"
	TypeSentenceCompletion Type = "sentence_completion"
	TypeSynonymMatch       Type = "synonym_match"
	TypeContextUsage       Type = "context_usage"
)

// AllTypes lists every exercise type.
var AllTypes = []Type{
	TypeWordToMeaning,
	TypeMeaningToWord,
	TypeSentenceCompletion,
	TypeSynonymMatch,
	TypeContextUsage,
}

// ParseType parses an exercise type name.
func ParseType(s string) (Type, error) {
	normalized := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range AllTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", apperr.Validation("unknown exercise type %q", s)
}

// Source tells where a question came from.
type Source string

const (
	SourceLocal     Source = "local"
	SourceAugmented Source = "augmented"
)

// Blank replaces the target word in sentence prompts.
const Blank = "_____"

// Question is one generated exercise question. It is never persisted.
type Question struct {
	ID            string   `json:"id"`
	Type          Type     `json:"type"`
	VocabularyID  int64    `json:"vocabulary_id"`
	Word          string   `json:"word"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Source        Source   `json:"source"`
}

// CorrectIndex returns the index of the correct answer in Options, or -1.
func (q Question) CorrectIndex() int {
	for i, option := range q.Options {
		if sameAnswer(option, q.CorrectAnswer) {
			return i
		}
	}
	return -1
}

// IsCorrect compares an answer with the correct answer, ignoring case and surrounding spaces.
func IsCorrect(submitted, correct string) bool {
	return sameAnswer(submitted, correct)
}

func sameAnswer(a, b string) bool {
	return normalizeAnswer(a) == normalizeAnswer(b)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks the option contract of a question built outside the Generator:
// a prompt, at most MaxDistractors+1 distinct options and exactly one correct answer.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return apperr.Validation("question for %q has no prompt", q.Word)
	}
	if len(q.Options) == 0 || len(q.Options) > DefaultMaxDistractors+1 {
		return apperr.Validation("question for %q has %d options", q.Word, len(q.Options))
	}
	seen := make(map[string]struct{}, len(q.Options))
	correct := 0
	for _, option := range q.Options {
		key := normalizeAnswer(option)
		if key == "" {
			return apperr.Validation("question for %q has an empty option", q.Word)
		}
		if _, ok := seen[key]; ok {
			return apperr.Validation("question for %q has duplicate option %q", q.Word, option)
		}
		seen[key] = struct{}{}
		if sameAnswer(option, q.CorrectAnswer) {
			correct++
		}
	}
	if correct != 1 {
		return apperr.Validation("question for %q must contain the correct answer exactly once", q.Word)
	}
	return nil
}
