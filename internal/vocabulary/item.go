// Package vocabulary provides the vocabulary item model and its store.
package vocabulary

import (
	"strings"
	"time"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/srs"
)

// Difficulty is the intrinsic difficulty of a word.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Origin records how a word entered the learner's vocabulary.
type Origin string

const (
	OriginConversation Origin = "conversation"
	OriginManual       Origin = "manual"
	OriginSystem       Origin = "system"
)

// Item is a word a learner is studying together with its learning state.
type Item struct {
	ID             int64            `db:"id" yaml:"-"`
	LearnerID      string           `db:"learner_id" yaml:"-"`
	Word           string           `db:"word" yaml:"word"`
	Definition     string           `db:"definition" yaml:"definition,omitempty"`
	Translation    string           `db:"translation" yaml:"translation,omitempty"`
	Phonetic       string           `db:"phonetic" yaml:"phonetic,omitempty"`
	PartOfSpeech   string           `db:"part_of_speech" yaml:"part_of_speech,omitempty"`
	Example        string           `db:"example" yaml:"example,omitempty"`
	Synonyms       StringList       `db:"synonyms" yaml:"synonyms,omitempty"`
	Antonyms       StringList       `db:"antonyms" yaml:"antonyms,omitempty"`
	Difficulty     Difficulty       `db:"difficulty" yaml:"difficulty,omitempty"`
	UsageNotes     string           `db:"usage_notes" yaml:"usage_notes,omitempty"`
	Origin         Origin           `db:"origin" yaml:"origin,omitempty"`
	MasteryLevel   srs.MasteryLevel `db:"mastery_level" yaml:"mastery_level"`
	EaseFactor     float64          `db:"ease_factor" yaml:"ease_factor"`
	Interval       int              `db:"interval_days" yaml:"interval_days"`
	Repetitions    int              `db:"repetitions" yaml:"repetitions"`
	NextReview     *time.Time       `db:"next_review" yaml:"next_review,omitempty"`
	TotalReviews   int              `db:"total_reviews" yaml:"total_reviews"`
	CorrectReviews int              `db:"correct_reviews" yaml:"correct_reviews"`
	Bookmarked     bool             `db:"bookmarked" yaml:"bookmarked,omitempty"`
	LastReviewedAt *time.Time       `db:"last_reviewed_at" yaml:"last_reviewed_at,omitempty"`
	CreatedAt      time.Time        `db:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at" yaml:"-"`
}

// NewItem creates an item in the default learning state: never reviewed and due immediately.
func NewItem(learnerID, word string, origin Origin) (*Item, error) {
	item := &Item{
		LearnerID:    strings.TrimSpace(learnerID),
		Word:         strings.TrimSpace(word),
		Difficulty:   DifficultyIntermediate,
		Origin:       origin,
		MasteryLevel: srs.MasteryNew,
		EaseFactor:   srs.DefaultEaseFactor,
	}
	if item.Origin == "" {
		item.Origin = OriginManual
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks the fields every stored item must have.
func (item *Item) Validate() error {
	if strings.TrimSpace(item.LearnerID) == "" {
		return apperr.Validation("learner id is required")
	}
	if strings.TrimSpace(item.Word) == "" {
		return apperr.Validation("word is required")
	}
	switch item.Difficulty {
	case "", DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return apperr.Validation("unknown difficulty %q", item.Difficulty)
	}
	switch item.Origin {
	case "", OriginConversation, OriginManual, OriginSystem:
	default:
		return apperr.Validation("unknown origin %q", item.Origin)
	}
	return nil
}

// State returns the scheduling state of the item.
func (item *Item) State() srs.State {
	return srs.State{
		EaseFactor:  item.EaseFactor,
		Interval:    item.Interval,
		Repetitions: item.Repetitions,
	}
}

// ApplyReview stores a scheduling outcome and the review counters on the item.
func (item *Item) ApplyReview(outcome srs.Outcome, isCorrect bool, mastery srs.MasteryLevel, reviewedAt time.Time) {
	item.EaseFactor = outcome.EaseFactor
	item.Interval = outcome.Interval
	item.Repetitions = outcome.Repetitions
	nextReview := outcome.NextReview
	item.NextReview = &nextReview
	item.MasteryLevel = mastery
	item.TotalReviews++
	if isCorrect {
		item.CorrectReviews++
	}
	item.LastReviewedAt = &reviewedAt
}

// IsDue reports whether the item should be reviewed on the given day.
func (item *Item) IsDue(today time.Time) bool {
	return item.NextReview == nil || !item.NextReview.After(srs.Date(today))
}

// IsNew reports whether the item has never been scheduled.
func (item *Item) IsNew() bool {
	return item.NextReview == nil
}

// Accuracy returns the share of correct reviews, or 0 before the first review.
func (item *Item) Accuracy() float64 {
	if item.TotalReviews == 0 {
		return 0
	}
	return float64(item.CorrectReviews) / float64(item.TotalReviews)
}
