package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/srs"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocabulary/mock_repository.go -package=mock_vocabulary

// Repository defines operations for managing a learner's vocabulary items.
type Repository interface {
	FindByID(ctx context.Context, learnerID string, id int64) (*Item, error)
	FindByWord(ctx context.Context, learnerID, word string) (*Item, error)
	FindAll(ctx context.Context, learnerID string) ([]Item, error)
	// FindDue returns items never scheduled or due on or before today, never-scheduled first,
	// then by next review date and id.
	FindDue(ctx context.Context, learnerID string, today time.Time, limit int) ([]Item, error)
	// FindUnscheduled returns never-scheduled items not in excludeIDs, most recently created first.
	FindUnscheduled(ctx context.Context, learnerID string, excludeIDs []int64, limit int) ([]Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	UpdateLearningState(ctx context.Context, item *Item) error
}

// DBRepository implements Repository on a SQL database or transaction.
type DBRepository struct {
	db  sqlx.ExtContext
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
// db may be a *sqlx.DB or a *sqlx.Tx.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FindByID returns the item, or nil if the learner has no such item.
func (r *DBRepository) FindByID(ctx context.Context, learnerID string, id int64) (*Item, error) {
	var item Item
	err := sqlx.GetContext(ctx, r.db, &item,
		r.db.Rebind("SELECT * FROM vocabulary_items WHERE id = ? AND learner_id = ?"),
		id, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(vocabulary_item) > %w", err)
	}
	return &item, nil
}

// FindByWord returns the item for a word, or nil if not found.
func (r *DBRepository) FindByWord(ctx context.Context, learnerID, word string) (*Item, error) {
	var item Item
	err := sqlx.GetContext(ctx, r.db, &item,
		r.db.Rebind("SELECT * FROM vocabulary_items WHERE learner_id = ? AND word = ?"),
		learnerID, strings.TrimSpace(word))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(vocabulary_item by word) > %w", err)
	}
	return &item, nil
}

// FindAll returns all items of a learner.
func (r *DBRepository) FindAll(ctx context.Context, learnerID string) ([]Item, error) {
	var items []Item
	if err := sqlx.SelectContext(ctx, r.db, &items,
		r.db.Rebind("SELECT * FROM vocabulary_items WHERE learner_id = ? ORDER BY id"),
		learnerID); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(vocabulary_items) > %w", err)
	}
	return items, nil
}

// FindDue returns the items to review on today.
func (r *DBRepository) FindDue(ctx context.Context, learnerID string, today time.Time, limit int) ([]Item, error) {
	var items []Item
	if err := sqlx.SelectContext(ctx, r.db, &items,
		r.db.Rebind(`SELECT * FROM vocabulary_items
		WHERE learner_id = ? AND (next_review IS NULL OR next_review <= ?)
		ORDER BY CASE WHEN next_review IS NULL THEN 0 ELSE 1 END, next_review, id
		LIMIT ?`),
		learnerID, today, limit); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(due vocabulary_items) > %w", err)
	}
	return items, nil
}

// FindUnscheduled returns never-scheduled items outside excludeIDs.
func (r *DBRepository) FindUnscheduled(ctx context.Context, learnerID string, excludeIDs []int64, limit int) ([]Item, error) {
	query := "SELECT * FROM vocabulary_items WHERE learner_id = ? AND next_review IS NULL"
	args := []any{learnerID}
	if len(excludeIDs) > 0 {
		query += " AND id NOT IN (?)"
		args = append(args, excludeIDs)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(unscheduled vocabulary_items) > %w", err)
	}

	var items []Item
	if err := sqlx.SelectContext(ctx, r.db, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(unscheduled vocabulary_items) > %w", err)
	}
	return items, nil
}

// Create inserts a new item and sets its ID and timestamps.
func (r *DBRepository) Create(ctx context.Context, item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	now := r.now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	if item.EaseFactor == 0 {
		item.EaseFactor = srs.DefaultEaseFactor
	}
	if item.Difficulty == "" {
		item.Difficulty = DifficultyIntermediate
	}
	if item.Origin == "" {
		item.Origin = OriginManual
	}

	id, err := database.InsertID(ctx, r.db,
		`INSERT INTO vocabulary_items (learner_id, word, definition, translation, phonetic, part_of_speech,
		example, synonyms, antonyms, difficulty, usage_notes, origin, mastery_level, ease_factor, interval_days,
		repetitions, next_review, total_reviews, correct_reviews, bookmarked, last_reviewed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.LearnerID, item.Word, item.Definition, item.Translation, item.Phonetic, item.PartOfSpeech,
		item.Example, item.Synonyms, item.Antonyms, item.Difficulty, item.UsageNotes, item.Origin,
		item.MasteryLevel, item.EaseFactor, item.Interval, item.Repetitions, item.NextReview,
		item.TotalReviews, item.CorrectReviews, item.Bookmarked, item.LastReviewedAt,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("database.InsertID(vocabulary_item) > %w", err)
	}
	item.ID = id
	return nil
}

// Update replaces the descriptive fields of an item. The learning state is left untouched.
func (r *DBRepository) Update(ctx context.Context, item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.UpdatedAt = r.now()
	return r.exec(ctx, "update vocabulary_item", item.ID,
		`UPDATE vocabulary_items SET word = ?, definition = ?, translation = ?, phonetic = ?, part_of_speech = ?,
		example = ?, synonyms = ?, antonyms = ?, difficulty = ?, usage_notes = ?, origin = ?, bookmarked = ?,
		updated_at = ?
		WHERE id = ? AND learner_id = ?`,
		item.Word, item.Definition, item.Translation, item.Phonetic, item.PartOfSpeech,
		item.Example, item.Synonyms, item.Antonyms, item.Difficulty, item.UsageNotes, item.Origin, item.Bookmarked,
		item.UpdatedAt, item.ID, item.LearnerID)
}

// UpdateLearningState writes the scheduling state and review counters of an item.
func (r *DBRepository) UpdateLearningState(ctx context.Context, item *Item) error {
	item.UpdatedAt = r.now()
	return r.exec(ctx, "update vocabulary_item learning state", item.ID,
		`UPDATE vocabulary_items SET mastery_level = ?, ease_factor = ?, interval_days = ?, repetitions = ?,
		next_review = ?, total_reviews = ?, correct_reviews = ?, last_reviewed_at = ?, updated_at = ?
		WHERE id = ? AND learner_id = ?`,
		item.MasteryLevel, item.EaseFactor, item.Interval, item.Repetitions,
		item.NextReview, item.TotalReviews, item.CorrectReviews, item.LastReviewedAt, item.UpdatedAt,
		item.ID, item.LearnerID)
}

func (r *DBRepository) exec(ctx context.Context, op string, id int64, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("db.ExecContext(%s) > %w", op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("vocabulary item %d not found", id)
	}
	return nil
}
