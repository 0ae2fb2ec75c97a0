// Package srs implements the forgetting-curve scheduler, performance rating and mastery rule.
package srs

import (
	"math"
	"time"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 3.0

	MinRating = 0
	MaxRating = 5
)

// Config holds the scheduler constants.
type Config struct {
	FirstInterval     int     `mapstructure:"first_interval" validate:"gte=0"`
	SecondInterval    int     `mapstructure:"second_interval" validate:"gtefield=FirstInterval"`
	IntervalModifier  float64 `mapstructure:"interval_modifier" validate:"gt=0"`
	MaxInterval       int     `mapstructure:"max_interval" validate:"gtefield=SecondInterval"`
	MinEaseFactor     float64 `mapstructure:"min_ease_factor" validate:"gt=0"`
	MaxEaseFactor     float64 `mapstructure:"max_ease_factor" validate:"gtefield=MinEaseFactor"`
	DefaultEaseFactor float64 `mapstructure:"default_ease_factor" validate:"gtefield=MinEaseFactor,ltefield=MaxEaseFactor"`
	PassThreshold     int     `mapstructure:"pass_threshold" validate:"gte=1,lte=5"`
	FailurePenalty    float64 `mapstructure:"failure_penalty" validate:"gte=0"`
}

// DefaultConfig returns the SM-2 constants used unless a deployment overrides them.
func DefaultConfig() Config {
	return Config{
		FirstInterval:     1,
		SecondInterval:    6,
		IntervalModifier:  1.0,
		MaxInterval:       365,
		MinEaseFactor:     MinEaseFactor,
		MaxEaseFactor:     MaxEaseFactor,
		DefaultEaseFactor: DefaultEaseFactor,
		PassThreshold:     3,
		FailurePenalty:    0.2,
	}
}

// State is the scheduling state of one vocabulary item.
type State struct {
	EaseFactor  float64
	Interval    int
	Repetitions int
}

// Outcome is the state after a review and the date it is due again.
type Outcome struct {
	State
	NextReview time.Time
}

// Scheduler applies the SM-2 update. It holds no mutable state and is safe for concurrent use.
type Scheduler struct {
	config Config
}

// NewScheduler creates a scheduler with the given constants.
func NewScheduler(config Config) *Scheduler {
	return &Scheduler{config: config}
}

// Config returns the scheduler constants.
func (s *Scheduler) Config() Config {
	return s.config
}

// InitialState returns the state of a never-reviewed item.
func (s *Scheduler) InitialState() State {
	return State{EaseFactor: s.config.DefaultEaseFactor}
}

// Review calculates the next state for a performance rating in 0..5.
// On success the interval grows from the previous ease factor; on failure repetitions and
// interval reset and the ease factor drops by the failure penalty.
func (s *Scheduler) Review(prev State, rating int, today time.Time) (Outcome, error) {
	if rating < MinRating || rating > MaxRating {
		return Outcome{}, apperr.Validation("performance rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	prev = s.normalize(prev)

	var next State
	if rating >= s.config.PassThreshold {
		next.Repetitions = prev.Repetitions + 1
		next.Interval = s.successInterval(prev, next.Repetitions)
		next.EaseFactor = s.clampEaseFactor(prev.EaseFactor + easeFactorDelta(rating))
	} else {
		next.Repetitions = 0
		next.Interval = s.config.FirstInterval
		next.EaseFactor = s.clampEaseFactor(prev.EaseFactor - s.config.FailurePenalty)
	}

	if next.Interval > s.config.MaxInterval {
		next.Interval = s.config.MaxInterval
	}
	if next.Interval < 0 {
		next.Interval = 0
	}

	return Outcome{
		State:      next,
		NextReview: Date(today).AddDate(0, 0, next.Interval),
	}, nil
}

func (s *Scheduler) successInterval(prev State, repetitions int) int {
	switch repetitions {
	case 1:
		return s.config.FirstInterval
	case 2:
		return s.config.SecondInterval
	default:
		return int(math.Round(float64(prev.Interval) * prev.EaseFactor * s.config.IntervalModifier))
	}
}

// easeFactorDelta is the standard SM-2 adjustment; it is negative for ratings below 4.
func easeFactorDelta(rating int) float64 {
	q := float64(rating)
	return 0.1 - (5-q)*(0.08+(5-q)*0.02)
}

func (s *Scheduler) clampEaseFactor(ef float64) float64 {
	return math.Min(math.Max(ef, s.config.MinEaseFactor), s.config.MaxEaseFactor)
}

// normalize repairs stored state that violates the bounds, e.g. rows written by older versions.
func (s *Scheduler) normalize(state State) State {
	if state.EaseFactor == 0 {
		state.EaseFactor = s.config.DefaultEaseFactor
	}
	state.EaseFactor = s.clampEaseFactor(state.EaseFactor)
	if state.Interval < 0 {
		state.Interval = 0
	}
	if state.Repetitions < 0 {
		state.Repetitions = 0
	}
	return state
}

// Date truncates t to midnight of its calendar day in t's location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
