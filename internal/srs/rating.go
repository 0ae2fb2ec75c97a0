package srs

import (
	"math"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

// RatingConfig holds the constants used to derive a performance rating from an answer.
type RatingConfig struct {
	TargetTimeSeconds float64 `mapstructure:"target_time_seconds" validate:"gt=0"`
}

// DefaultRatingConfig returns a 10 second target response time.
func DefaultRatingConfig() RatingConfig {
	return RatingConfig{TargetTimeSeconds: 10}
}

// Answer describes one submitted answer for rating purposes.
type Answer struct {
	IsCorrect           bool
	ResponseTimeSeconds float64
	// Difficulty is the learner-reported difficulty, 0 (trivial) to 5 (very hard). Nil if not reported.
	Difficulty *int
}

// RatePerformance maps an answer to a 0..5 rating.
// Incorrect answers rate 0. Correct answers start at 3 and move with speed and reported difficulty.
func RatePerformance(config RatingConfig, answer Answer) (int, error) {
	if answer.ResponseTimeSeconds < 0 || math.IsNaN(answer.ResponseTimeSeconds) {
		return 0, apperr.Validation("response time must not be negative, got %v", answer.ResponseTimeSeconds)
	}
	if answer.Difficulty != nil && (*answer.Difficulty < MinRating || *answer.Difficulty > MaxRating) {
		return 0, apperr.Validation("difficulty rating must be between %d and %d, got %d", MinRating, MaxRating, *answer.Difficulty)
	}
	if !answer.IsCorrect {
		return 0, nil
	}

	rating := 3
	timeRatio := 2.0
	if answer.ResponseTimeSeconds > 0 {
		timeRatio = math.Min(config.TargetTimeSeconds/answer.ResponseTimeSeconds, 2)
	}
	switch {
	case timeRatio > 1.5:
		rating += 2
	case timeRatio > 1.2:
		rating++
	case timeRatio < 0.5:
		rating--
	}

	if answer.Difficulty != nil {
		switch {
		case *answer.Difficulty <= 1:
			rating = min(MaxRating, rating+1)
		case *answer.Difficulty >= 4:
			rating = max(1, rating-1)
		}
	}

	return min(max(rating, MinRating), MaxRating), nil
}
