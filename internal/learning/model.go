// Package learning provides the practice record log: one entry per answered exercise question.
package learning

import "time"

// PracticeRecord is an immutable log entry of one answered question together with the
// scheduling snapshot the answer produced.
type PracticeRecord struct {
	ID                  int64     `db:"id" yaml:"id"`
	LearnerID           string    `db:"learner_id" yaml:"learner_id"`
	VocabularyID        int64     `db:"vocabulary_id" yaml:"vocabulary_id"`
	QuestionID          string    `db:"question_id" yaml:"question_id"`
	ExerciseType        string    `db:"exercise_type" yaml:"exercise_type"`
	SubmittedAnswer     string    `db:"submitted_answer" yaml:"submitted_answer"`
	CorrectAnswer       string    `db:"correct_answer" yaml:"correct_answer"`
	IsCorrect           bool      `db:"is_correct" yaml:"is_correct"`
	ResponseTimeSeconds float64   `db:"response_time_seconds" yaml:"response_time_seconds"`
	DifficultyRating    *int      `db:"difficulty_rating" yaml:"difficulty_rating,omitempty"`
	PerformanceRating   int       `db:"performance_rating" yaml:"performance_rating"`
	IntervalDays        int       `db:"interval_days" yaml:"interval_days"`
	EaseFactor          float64   `db:"ease_factor" yaml:"ease_factor"`
	AnsweredAt          time.Time `db:"answered_at" yaml:"answered_at"`
	CreatedAt           time.Time `db:"created_at" yaml:"created_at"`
}
