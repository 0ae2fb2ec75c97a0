package server

import (
	"context"

	"github.com/at-ishikawa/wordloop/internal/exercise"
	"github.com/at-ishikawa/wordloop/internal/practice"
)

//go:generate mockgen -source=engine.go -destination=../mocks/server/mock_engine.go -package=mock_server

// PracticeEngine is the part of practice.Engine the handlers serve.
type PracticeEngine interface {
	PlanDailyPractice(ctx context.Context, learnerID string, targetCount int) (*practice.DailyPractice, error)
	BuildSession(ctx context.Context, learnerID string, targetCount int) (*practice.Session, error)
	GenerateQuestion(ctx context.Context, learnerID string, vocabularyID int64, recentAccuracy float64) (exercise.Question, error)
	RecentAccuracy(ctx context.Context, learnerID string) (float64, error)
	RecordAnswer(ctx context.Context, input practice.AnswerInput) (practice.AnswerResult, error)
}
