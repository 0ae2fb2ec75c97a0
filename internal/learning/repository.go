package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordloop/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/learning/mock_repository.go -package=mock_learning

// Repository defines operations for the append-only practice record log.
type Repository interface {
	// FindRecent returns the latest records of a learner, newest first.
	FindRecent(ctx context.Context, learnerID string, limit int) ([]PracticeRecord, error)
	// FindByVocabulary returns the records of one item in answer order.
	FindByVocabulary(ctx context.Context, learnerID string, vocabularyID int64) ([]PracticeRecord, error)
	// FindBetween returns the records answered in [from, to), oldest first.
	FindBetween(ctx context.Context, learnerID string, from, to time.Time) ([]PracticeRecord, error)
	Create(ctx context.Context, record *PracticeRecord) error
}

// DBRepository implements Repository on a SQL database or transaction.
type DBRepository struct {
	db  sqlx.ExtContext
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FindRecent returns up to limit records of a learner, newest first.
func (r *DBRepository) FindRecent(ctx context.Context, learnerID string, limit int) ([]PracticeRecord, error) {
	var records []PracticeRecord
	if err := sqlx.SelectContext(ctx, r.db, &records,
		r.db.Rebind("SELECT * FROM practice_records WHERE learner_id = ? ORDER BY answered_at DESC, id DESC LIMIT ?"),
		learnerID, limit); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(recent practice_records) > %w", err)
	}
	return records, nil
}

// FindByVocabulary returns all records of one vocabulary item in answer order.
func (r *DBRepository) FindByVocabulary(ctx context.Context, learnerID string, vocabularyID int64) ([]PracticeRecord, error) {
	var records []PracticeRecord
	if err := sqlx.SelectContext(ctx, r.db, &records,
		r.db.Rebind("SELECT * FROM practice_records WHERE learner_id = ? AND vocabulary_id = ? ORDER BY answered_at, id"),
		learnerID, vocabularyID); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(practice_records by vocabulary) > %w", err)
	}
	return records, nil
}

// FindBetween returns the records answered in [from, to).
func (r *DBRepository) FindBetween(ctx context.Context, learnerID string, from, to time.Time) ([]PracticeRecord, error) {
	var records []PracticeRecord
	if err := sqlx.SelectContext(ctx, r.db, &records,
		r.db.Rebind("SELECT * FROM practice_records WHERE learner_id = ? AND answered_at >= ? AND answered_at < ? ORDER BY answered_at, id"),
		learnerID, from, to); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(practice_records between) > %w", err)
	}
	return records, nil
}

// Create appends a record.
func (r *DBRepository) Create(ctx context.Context, record *PracticeRecord) error {
	record.CreatedAt = r.now()
	if record.AnsweredAt.IsZero() {
		record.AnsweredAt = record.CreatedAt
	}

	id, err := database.InsertID(ctx, r.db,
		`INSERT INTO practice_records (learner_id, vocabulary_id, question_id, exercise_type, submitted_answer,
		correct_answer, is_correct, response_time_seconds, difficulty_rating, performance_rating, interval_days,
		ease_factor, answered_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.LearnerID, record.VocabularyID, record.QuestionID, record.ExerciseType, record.SubmittedAnswer,
		record.CorrectAnswer, record.IsCorrect, record.ResponseTimeSeconds, record.DifficultyRating,
		record.PerformanceRating, record.IntervalDays, record.EaseFactor, record.AnsweredAt, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("database.InsertID(practice_record) > %w", err)
	}
	record.ID = id
	return nil
}
