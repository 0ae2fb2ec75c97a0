package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/exercise"
	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// AnswerInput is one submitted answer.
type AnswerInput struct {
	LearnerID           string        `json:"learner_id" validate:"required"`
	QuestionID          string        `json:"question_id"`
	VocabularyID        int64         `json:"vocabulary_id" validate:"gt=0"`
	ExerciseType        exercise.Type `json:"exercise_type" validate:"required,oneof=word_to_meaning meaning_to_word sentence_completion synonym_match context_usage"`
	SubmittedAnswer     string        `json:"submitted_answer"`
	CorrectAnswer       string        `json:"correct_answer" validate:"required"`
	ResponseTimeSeconds float64       `json:"response_time_seconds" validate:"gte=0"`
	DifficultyRating    *int          `json:"difficulty_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// AnswerResult is the outcome of a recorded answer.
type AnswerResult struct {
	IsCorrect         bool             `json:"is_correct"`
	PerformanceRating int              `json:"performance_rating"`
	NewMasteryLevel   srs.MasteryLevel `json:"new_mastery_level"`
	NextReviewDate    time.Time        `json:"next_review_date"`
	Interval          int              `json:"interval"`
	EaseFactor        float64          `json:"ease_factor"`
	Repetitions       int              `json:"repetitions"`
}

// Recorder scores answers and reschedules the answered items.
type Recorder struct {
	items        vocabulary.Repository
	records      learning.Repository
	store        Store
	scheduler    *srs.Scheduler
	ratingConfig srs.RatingConfig
	validate     *validator.Validate
	now          func() time.Time
}

func NewRecorder(
	items vocabulary.Repository,
	records learning.Repository,
	store Store,
	scheduler *srs.Scheduler,
	ratingConfig srs.RatingConfig,
) *Recorder {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return jsonName(field.Tag.Get("json"), field.Name)
	})
	return &Recorder{
		items:        items,
		records:      records,
		store:        store,
		scheduler:    scheduler,
		ratingConfig: ratingConfig,
		validate:     validate,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Record grades the answer, appends a practice record and writes the item's new learning
// state in one commit. Nothing is applied when an error is returned.
func (r *Recorder) Record(ctx context.Context, input AnswerInput) (AnswerResult, error) {
	if err := r.validateInput(input); err != nil {
		return AnswerResult{}, err
	}

	isCorrect := exercise.IsCorrect(input.SubmittedAnswer, input.CorrectAnswer)
	rating, err := srs.RatePerformance(r.ratingConfig, srs.Answer{
		IsCorrect:           isCorrect,
		ResponseTimeSeconds: input.ResponseTimeSeconds,
		Difficulty:          input.DifficultyRating,
	})
	if err != nil {
		return AnswerResult{}, err
	}

	item, err := r.items.FindByID(ctx, input.LearnerID, input.VocabularyID)
	if err != nil {
		return AnswerResult{}, storeError("find vocabulary item", err)
	}
	if item == nil {
		return AnswerResult{}, apperr.NotFound("vocabulary item %d of learner %s", input.VocabularyID, input.LearnerID)
	}

	answeredAt := r.now().UTC()
	outcome, err := r.scheduler.Review(item.State(), rating, answeredAt)
	if err != nil {
		return AnswerResult{}, err
	}
	mastery := srs.NextMasteryLevel(item.MasteryLevel, rating, outcome.Repetitions)

	updated := *item
	updated.ApplyReview(outcome, isCorrect, mastery, answeredAt)
	record := learning.PracticeRecord{
		LearnerID:           input.LearnerID,
		VocabularyID:        input.VocabularyID,
		QuestionID:          input.QuestionID,
		ExerciseType:        string(input.ExerciseType),
		SubmittedAnswer:     input.SubmittedAnswer,
		CorrectAnswer:       input.CorrectAnswer,
		IsCorrect:           isCorrect,
		ResponseTimeSeconds: input.ResponseTimeSeconds,
		DifficultyRating:    input.DifficultyRating,
		PerformanceRating:   rating,
		IntervalDays:        outcome.Interval,
		EaseFactor:          outcome.EaseFactor,
		AnsweredAt:          answeredAt,
	}
	if err := r.store.CommitAnswer(ctx, &updated, &record); err != nil {
		slog.Default().Error("failed to commit answer",
			"learnerID", input.LearnerID,
			"vocabularyID", input.VocabularyID,
			"error", err,
		)
		return AnswerResult{}, storeError("commit answer", err)
	}

	return AnswerResult{
		IsCorrect:         isCorrect,
		PerformanceRating: rating,
		NewMasteryLevel:   mastery,
		NextReviewDate:    outcome.NextReview,
		Interval:          outcome.Interval,
		EaseFactor:        outcome.EaseFactor,
		Repetitions:       outcome.Repetitions,
	}, nil
}

// Replay rebuilds an item's learning state from its practice records in answer order,
// starting from the default state. The stored mastery level is kept when it is higher.
// Items without records are returned unchanged.
func (r *Recorder) Replay(ctx context.Context, learnerID string, vocabularyID int64) (*vocabulary.Item, error) {
	if strings.TrimSpace(learnerID) == "" {
		return nil, apperr.Validation("learner id is required")
	}
	item, err := r.items.FindByID(ctx, learnerID, vocabularyID)
	if err != nil {
		return nil, storeError("find vocabulary item", err)
	}
	if item == nil {
		return nil, apperr.NotFound("vocabulary item %d of learner %s", vocabularyID, learnerID)
	}
	records, err := r.records.FindByVocabulary(ctx, learnerID, vocabularyID)
	if err != nil {
		return nil, storeError("find practice records", err)
	}
	if len(records) == 0 {
		return item, nil
	}

	replayed := *item
	replayed.TotalReviews = 0
	replayed.CorrectReviews = 0
	state := r.scheduler.InitialState()
	mastery := srs.MasteryNew
	for _, record := range records {
		outcome, err := r.scheduler.Review(state, record.PerformanceRating, record.AnsweredAt)
		if err != nil {
			return nil, fmt.Errorf("replay record %d > %w", record.ID, err)
		}
		state = outcome.State
		mastery = srs.NextMasteryLevel(mastery, record.PerformanceRating, outcome.Repetitions)
		replayed.ApplyReview(outcome, record.IsCorrect, max(mastery, item.MasteryLevel), record.AnsweredAt)
	}

	if err := r.items.UpdateLearningState(ctx, &replayed); err != nil {
		return nil, storeError("update learning state", err)
	}
	slog.Default().Info("replayed learning state",
		"learnerID", learnerID,
		"vocabularyID", vocabularyID,
		"records", len(records),
		"masteryLevel", replayed.MasteryLevel,
	)
	return &replayed, nil
}

func (r *Recorder) validateInput(input AnswerInput) error {
	err := r.validate.Struct(input)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperr.Validation("invalid answer: %v", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return apperr.Validation("invalid answer: %s", strings.Join(messages, ", "))
}

func jsonName(tag, fallback string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return fallback
	}
	return name
}
