package practice

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/exercise"
	"github.com/at-ishikawa/wordloop/internal/inference"
	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/statistics"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

const DefaultAccuracyWindow = 20

// Config holds the tunable constants of the engine.
type Config struct {
	Scheduler      srs.Config              `mapstructure:"scheduler"`
	Rating         srs.RatingConfig        `mapstructure:"rating"`
	Selector       exercise.SelectorConfig `mapstructure:"selector"`
	TargetCount    int                     `mapstructure:"target_count" validate:"gte=1"`
	AccuracyWindow int                     `mapstructure:"accuracy_window" validate:"gte=1"`
	MaxDistractors int                     `mapstructure:"max_distractors" validate:"gte=0,lte=3"`
}

func DefaultConfig() Config {
	return Config{
		Scheduler:      srs.DefaultConfig(),
		Rating:         srs.DefaultRatingConfig(),
		Selector:       exercise.DefaultSelectorConfig(),
		TargetCount:    DefaultTargetCount,
		AccuracyWindow: DefaultAccuracyWindow,
		MaxDistractors: exercise.DefaultMaxDistractors,
	}
}

// Session is a planned practice with one question per planned item.
type Session struct {
	Plan      *DailyPractice      `json:"plan"`
	Accuracy  float64             `json:"accuracy"`
	Questions []exercise.Question `json:"questions"`
	Skipped   []SkippedItem       `json:"skipped,omitempty"`
}

// SkippedItem is a planned item no question could be built for.
type SkippedItem struct {
	VocabularyID int64  `json:"vocabulary_id"`
	Word         string `json:"word"`
	Reason       string `json:"reason"`
}

type engineOptions struct {
	augmenter inference.QuestionAugmenter
	now       func() time.Time
	rnd       *rand.Rand
}

type Option func(*engineOptions)

// WithAugmenter sets the service asked first for session questions.
func WithAugmenter(augmenter inference.QuestionAugmenter) Option {
	return func(o *engineOptions) {
		if augmenter != nil {
			o.augmenter = augmenter
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) {
		o.now = now
	}
}

// WithRand sets the random source of the question generator and type selector.
func WithRand(rnd *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rnd = rnd
	}
}

// Engine exposes the learning operations used by the outer surfaces.
type Engine struct {
	items          vocabulary.Repository
	records        learning.Repository
	planner        *Planner
	recorder       *Recorder
	generator      *exercise.Generator
	selector       *exercise.Selector
	augmenter      inference.QuestionAugmenter
	accuracyWindow int
}

func NewEngine(
	config Config,
	items vocabulary.Repository,
	records learning.Repository,
	store Store,
	opts ...Option,
) *Engine {
	options := engineOptions{
		augmenter: inference.NopAugmenter{},
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&options)
	}

	// The generator and selector each lock their own source, so they must not share one.
	generatorOptions := []exercise.GeneratorOption{exercise.WithMaxDistractors(config.MaxDistractors)}
	var selectorRand *rand.Rand
	if options.rnd != nil {
		generatorOptions = append(generatorOptions, exercise.WithRand(rand.New(rand.NewSource(options.rnd.Int63()))))
		selectorRand = rand.New(rand.NewSource(options.rnd.Int63()))
	}

	planner := NewPlanner(items, config.TargetCount)
	planner.now = options.now
	recorder := NewRecorder(items, records, store, srs.NewScheduler(config.Scheduler), config.Rating)
	recorder.now = options.now

	accuracyWindow := config.AccuracyWindow
	if accuracyWindow <= 0 {
		accuracyWindow = DefaultAccuracyWindow
	}
	return &Engine{
		items:          items,
		records:        records,
		planner:        planner,
		recorder:       recorder,
		generator:      exercise.NewGenerator(generatorOptions...),
		selector:       exercise.NewSelector(config.Selector, selectorRand),
		augmenter:      options.augmenter,
		accuracyWindow: accuracyWindow,
	}
}

// PlanDailyPractice returns today's review and new items for the learner.
func (e *Engine) PlanDailyPractice(ctx context.Context, learnerID string, targetCount int) (*DailyPractice, error) {
	return e.planner.Plan(ctx, learnerID, targetCount)
}

// GenerateQuestion builds a question for a stored item, using the learner's other items as distractors.
func (e *Engine) GenerateQuestion(ctx context.Context, learnerID string, vocabularyID int64, recentAccuracy float64) (exercise.Question, error) {
	item, err := e.items.FindByID(ctx, learnerID, vocabularyID)
	if err != nil {
		return exercise.Question{}, storeError("find vocabulary item", err)
	}
	if item == nil {
		return exercise.Question{}, apperr.NotFound("vocabulary item %d of learner %s", vocabularyID, learnerID)
	}
	pool, err := e.items.FindAll(ctx, learnerID)
	if err != nil {
		return exercise.Question{}, storeError("find vocabulary items", err)
	}
	return e.GenerateQuestionFor(*item, pool, recentAccuracy)
}

// GenerateQuestionFor selects an exercise type for the item and builds a question without any I/O.
func (e *Engine) GenerateQuestionFor(item vocabulary.Item, pool []vocabulary.Item, recentAccuracy float64) (exercise.Question, error) {
	questionType, err := e.selector.Select(item, recentAccuracy)
	if err != nil {
		return exercise.Question{}, err
	}
	return e.generator.Generate(questionType, item, pool)
}

// RecordAnswer grades an answer and reschedules the item.
func (e *Engine) RecordAnswer(ctx context.Context, input AnswerInput) (AnswerResult, error) {
	return e.recorder.Record(ctx, input)
}

// Replay rebuilds an item's learning state from its practice records.
func (e *Engine) Replay(ctx context.Context, learnerID string, vocabularyID int64) (*vocabulary.Item, error) {
	return e.recorder.Replay(ctx, learnerID, vocabularyID)
}

// RecentAccuracy returns the share of correct answers among the learner's latest records.
func (e *Engine) RecentAccuracy(ctx context.Context, learnerID string) (float64, error) {
	if strings.TrimSpace(learnerID) == "" {
		return 0, apperr.Validation("learner id is required")
	}
	records, err := e.records.FindRecent(ctx, learnerID, e.accuracyWindow)
	if err != nil {
		return 0, storeError("find recent practice records", err)
	}
	return statistics.RecentAccuracy(records), nil
}

// BuildSession plans today's practice and builds one question per planned item.
// Questions from the augmenter are used first; the local generator fills the gaps by word.
func (e *Engine) BuildSession(ctx context.Context, learnerID string, targetCount int) (*Session, error) {
	plan, err := e.planner.Plan(ctx, learnerID, targetCount)
	if err != nil {
		return nil, err
	}
	accuracy, err := e.RecentAccuracy(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	pool, err := e.items.FindAll(ctx, learnerID)
	if err != nil {
		return nil, storeError("find vocabulary items", err)
	}

	planned := plan.Items()
	types := make([]exercise.Type, len(planned))
	for i, item := range planned {
		if types[i], err = e.selector.Select(item, accuracy); err != nil {
			return nil, err
		}
	}
	augmented := e.augment(ctx, planned, types)

	session := &Session{
		Plan:      plan,
		Accuracy:  accuracy,
		Questions: make([]exercise.Question, 0, len(planned)),
	}
	for i, item := range planned {
		key := wordKey(item.Word)
		if question, ok := augmented[key]; ok {
			delete(augmented, key)
			question.ID = uuid.NewString()
			question.VocabularyID = item.ID
			question.Word = item.Word
			session.Questions = append(session.Questions, question)
			continue
		}

		question, err := e.generator.Generate(types[i], item, pool)
		if err != nil {
			slog.Default().Warn("skip item without question",
				"learnerID", learnerID,
				"vocabularyID", item.ID,
				"error", err,
			)
			session.Skipped = append(session.Skipped, SkippedItem{
				VocabularyID: item.ID,
				Word:         item.Word,
				Reason:       err.Error(),
			})
			continue
		}
		session.Questions = append(session.Questions, question)
	}
	return session, nil
}

// augment asks the augmenter for questions and keeps the valid ones, keyed by word.
// Failures are logged and yield no questions.
func (e *Engine) augment(ctx context.Context, planned []vocabulary.Item, types []exercise.Type) map[string]exercise.Question {
	result := make(map[string]exercise.Question)
	if len(planned) == 0 {
		return result
	}

	request := inference.AugmentRequest{Items: make([]inference.AugmentItem, 0, len(planned))}
	wanted := make(map[string]struct{}, len(planned))
	for i, item := range planned {
		wanted[wordKey(item.Word)] = struct{}{}
		request.Items = append(request.Items, inference.AugmentItem{
			Word:         item.Word,
			Definition:   firstNonEmpty(item.Definition, item.Translation),
			PartOfSpeech: item.PartOfSpeech,
			Example:      item.Example,
			Synonyms:     item.Synonyms,
			ExerciseType: string(types[i]),
		})
	}

	response, err := e.augmenter.AugmentQuestions(ctx, request)
	if err != nil {
		slog.Default().Warn("question augmentation failed, generating locally",
			"error", apperr.AugmentationUnavailable("augment questions", err),
		)
		return result
	}

	for _, augmented := range response.Questions {
		key := wordKey(augmented.Word)
		if _, ok := wanted[key]; !ok {
			continue
		}
		if _, ok := result[key]; ok {
			continue
		}
		questionType, err := exercise.ParseType(augmented.ExerciseType)
		if err != nil {
			slog.Default().Warn("discard augmented question", "word", augmented.Word, "error", err)
			continue
		}
		question := exercise.Question{
			Type:          questionType,
			Word:          augmented.Word,
			Prompt:        augmented.Prompt,
			Options:       augmented.Options,
			CorrectAnswer: augmented.CorrectAnswer,
			Explanation:   augmented.Explanation,
			Source:        exercise.SourceAugmented,
		}
		if err := question.Validate(); err != nil {
			slog.Default().Warn("discard augmented question", "word", augmented.Word, "error", err)
			continue
		}
		result[key] = question
	}
	if len(result) < len(wanted) {
		slog.Default().Info("augmenter returned fewer questions than requested",
			"requested", len(wanted),
			"usable", len(result),
		)
	}
	return result
}

func wordKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
