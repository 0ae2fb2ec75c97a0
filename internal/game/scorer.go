// Package game scores completed game sessions and tracks sessions in progress.
package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

// GameType selects the scoring constants of a session.
type GameType string

const (
	GameTypeQuiz     GameType = "quiz"
	GameTypeMatching GameType = "matching"
)

// ParseGameType parses a game type name.
func ParseGameType(s string) (GameType, error) {
	switch gameType := GameType(strings.ToLower(strings.TrimSpace(s))); gameType {
	case GameTypeQuiz, GameTypeMatching:
		return gameType, nil
	}
	return "", apperr.Validation("unknown game type %q", s)
}

func (t GameType) String() string {
	return string(t)
}

// Set implements pflag.Value.
func (t *GameType) Set(s string) error {
	gameType, err := ParseGameType(s)
	if err != nil {
		return err
	}
	*t = gameType
	return nil
}

// Type implements pflag.Value.
func (t *GameType) Type() string {
	return "gameType"
}

// SpeedBasis decides which time is compared with the speed bonus threshold.
type SpeedBasis string

const (
	// SpeedPerQuestion compares the average time per question.
	SpeedPerQuestion SpeedBasis = "per_question"
	// SpeedTotal compares the time of the whole session.
	SpeedTotal SpeedBasis = "total"
)

// StreakBonusMinimum is the shortest streak that earns the streak multiplier.
const StreakBonusMinimum = 3

// Bundle holds the scoring constants of one game type.
type Bundle struct {
	BasePointsPerCorrect       int        `mapstructure:"base_points_per_correct" validate:"gte=0"`
	SpeedBonusThresholdSeconds float64    `mapstructure:"speed_bonus_threshold_seconds" validate:"gte=0"`
	SpeedBasis                 SpeedBasis `mapstructure:"speed_basis" validate:"oneof=per_question total"`
	SpeedBonusPoints           int        `mapstructure:"speed_bonus_points" validate:"gte=0"`
	StreakBonusMultiplier      float64    `mapstructure:"streak_bonus_multiplier" validate:"gte=1"`
	PerfectScoreBonus          int        `mapstructure:"perfect_score_bonus" validate:"gte=0"`
	AccuracyBonusThreshold     float64    `mapstructure:"accuracy_bonus_threshold" validate:"gte=0,lte=1"`
	AccuracyBonusPoints        int        `mapstructure:"accuracy_bonus_points" validate:"gte=0"`
}

func QuizBundle() Bundle {
	return Bundle{
		BasePointsPerCorrect:       10,
		SpeedBonusThresholdSeconds: 10,
		SpeedBasis:                 SpeedPerQuestion,
		SpeedBonusPoints:           5,
		StreakBonusMultiplier:      1.5,
		PerfectScoreBonus:          100,
		AccuracyBonusThreshold:     0.8,
		AccuracyBonusPoints:        50,
	}
}

func MatchingBundle() Bundle {
	return Bundle{
		BasePointsPerCorrect:       5,
		SpeedBonusThresholdSeconds: 60,
		SpeedBasis:                 SpeedTotal,
		SpeedBonusPoints:           10,
		StreakBonusMultiplier:      1.2,
		PerfectScoreBonus:          50,
		AccuracyBonusThreshold:     0.8,
		AccuracyBonusPoints:        25,
	}
}

func DefaultBundles() map[GameType]Bundle {
	return map[GameType]Bundle{
		GameTypeQuiz:     QuizBundle(),
		GameTypeMatching: MatchingBundle(),
	}
}

// Scorer computes points for completed sessions. It is safe for concurrent use.
type Scorer struct {
	bundles map[GameType]Bundle
}

// NewScorer creates a Scorer. Game types missing from bundles use the default bundle.
func NewScorer(bundles map[GameType]Bundle) *Scorer {
	merged := DefaultBundles()
	for gameType, bundle := range bundles {
		merged[gameType] = bundle
	}
	return &Scorer{bundles: merged}
}

// Bundle returns the constants of a game type.
func (s *Scorer) Bundle(gameType GameType) (Bundle, error) {
	bundle, ok := s.bundles[gameType]
	if !ok {
		return Bundle{}, apperr.Validation("unknown game type %q", gameType)
	}
	return bundle, nil
}

// ScoreGameSession returns the points of a completed session of the given type.
func (s *Scorer) ScoreGameSession(gameType GameType, correctCount, totalCount int, timeSpentSeconds float64, bestStreak int) (int, error) {
	bundle, err := s.Bundle(gameType)
	if err != nil {
		return 0, err
	}
	return Score(bundle, correctCount, totalCount, timeSpentSeconds, bestStreak)
}

// Score applies the bonuses in order: base points, speed bonus, streak multiplier on the
// running total (floored), then the flat perfect and accuracy bonuses.
func Score(bundle Bundle, correctCount, totalCount int, timeSpentSeconds float64, bestStreak int) (int, error) {
	if err := validateSession(correctCount, totalCount, timeSpentSeconds, bestStreak); err != nil {
		return 0, err
	}

	points := correctCount * bundle.BasePointsPerCorrect

	measured := timeSpentSeconds
	if bundle.SpeedBasis != SpeedTotal {
		measured = timeSpentSeconds / float64(totalCount)
	}
	if measured < bundle.SpeedBonusThresholdSeconds {
		points += bundle.SpeedBonusPoints
	}

	if bestStreak >= StreakBonusMinimum {
		points = int(math.Floor(float64(points) * bundle.StreakBonusMultiplier))
	}

	if correctCount == totalCount {
		points += bundle.PerfectScoreBonus
	}
	if float64(correctCount)/float64(totalCount) >= bundle.AccuracyBonusThreshold {
		points += bundle.AccuracyBonusPoints
	}
	return points, nil
}

func validateSession(correctCount, totalCount int, timeSpentSeconds float64, bestStreak int) error {
	var problems []string
	if totalCount <= 0 {
		problems = append(problems, fmt.Sprintf("total count must be positive, got %d", totalCount))
	}
	if correctCount < 0 || (totalCount > 0 && correctCount > totalCount) {
		problems = append(problems, fmt.Sprintf("correct count must be between 0 and %d, got %d", max(totalCount, 0), correctCount))
	}
	if timeSpentSeconds < 0 || math.IsNaN(timeSpentSeconds) {
		problems = append(problems, fmt.Sprintf("time spent must not be negative, got %v", timeSpentSeconds))
	}
	if bestStreak < 0 {
		problems = append(problems, fmt.Sprintf("best streak must not be negative, got %d", bestStreak))
	}
	if len(problems) > 0 {
		return apperr.Validation("invalid game session: %s", strings.Join(problems, "; "))
	}
	return nil
}
