package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

func TestScorer_ScoreGameSession(t *testing.T) {
	tests := []struct {
		name         string
		gameType     GameType
		correctCount int
		totalCount   int
		timeSpent    float64
		bestStreak   int
		want         int
	}{
		{
			// (10*10 + 5) * 1.5 = 157.5 floored, then perfect and accuracy bonuses
			name:         "perfect fast quiz with streak",
			gameType:     GameTypeQuiz,
			correctCount: 10,
			totalCount:   10,
			timeSpent:    80,
			bestStreak:   4,
			want:         307,
		},
		{
			name:         "slow quiz gets no speed bonus",
			gameType:     GameTypeQuiz,
			correctCount: 10,
			totalCount:   10,
			timeSpent:    100,
			bestStreak:   4,
			want:         150 + 100 + 50,
		},
		{
			name:         "short streak gets no multiplier",
			gameType:     GameTypeQuiz,
			correctCount: 8,
			totalCount:   10,
			timeSpent:    50,
			bestStreak:   2,
			want:         80 + 5 + 50,
		},
		{
			name:         "below accuracy threshold",
			gameType:     GameTypeQuiz,
			correctCount: 7,
			totalCount:   10,
			timeSpent:    200,
			bestStreak:   3,
			want:         105,
		},
		{
			name:         "no correct answers",
			gameType:     GameTypeQuiz,
			correctCount: 0,
			totalCount:   5,
			timeSpent:    100,
			bestStreak:   0,
			want:         0,
		},
		{
			// 6*5 + 10 = 40, *1.2 = 48, +50 +25
			name:         "matching compares the whole session time",
			gameType:     GameTypeMatching,
			correctCount: 6,
			totalCount:   6,
			timeSpent:    45,
			bestStreak:   6,
			want:         123,
		},
		{
			name:         "slow matching",
			gameType:     GameTypeMatching,
			correctCount: 6,
			totalCount:   6,
			timeSpent:    60,
			bestStreak:   6,
			want:         36 + 50 + 25,
		},
	}

	scorer := NewScorer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scorer.ScoreGameSession(tt.gameType, tt.correctCount, tt.totalCount, tt.timeSpent, tt.bestStreak)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScorer_ScoreGameSession_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		gameType     GameType
		correctCount int
		totalCount   int
		timeSpent    float64
		bestStreak   int
	}{
		{name: "unknown game type", gameType: "puzzle", correctCount: 1, totalCount: 1},
		{name: "zero total", gameType: GameTypeQuiz, totalCount: 0},
		{name: "correct above total", gameType: GameTypeQuiz, correctCount: 11, totalCount: 10},
		{name: "negative correct", gameType: GameTypeQuiz, correctCount: -1, totalCount: 10},
		{name: "negative time", gameType: GameTypeQuiz, correctCount: 1, totalCount: 10, timeSpent: -1},
		{name: "NaN time", gameType: GameTypeQuiz, correctCount: 1, totalCount: 10, timeSpent: math.NaN()},
		{name: "negative streak", gameType: GameTypeQuiz, correctCount: 1, totalCount: 10, bestStreak: -1},
	}

	scorer := NewScorer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scorer.ScoreGameSession(tt.gameType, tt.correctCount, tt.totalCount, tt.timeSpent, tt.bestStreak)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestNewScorer_OverridesBundle(t *testing.T) {
	custom := QuizBundle()
	custom.BasePointsPerCorrect = 20

	scorer := NewScorer(map[GameType]Bundle{GameTypeQuiz: custom})
	got, err := scorer.ScoreGameSession(GameTypeQuiz, 1, 10, 500, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	matching, err := scorer.Bundle(GameTypeMatching)
	require.NoError(t, err)
	assert.Equal(t, MatchingBundle(), matching)
}

func TestGameType_Set(t *testing.T) {
	var gameType GameType
	require.NoError(t, gameType.Set(" Matching "))
	assert.Equal(t, GameTypeMatching, gameType)
	assert.Equal(t, "matching", gameType.String())
	assert.Equal(t, "gameType", gameType.Type())
	assert.Error(t, gameType.Set("puzzle"))
}
