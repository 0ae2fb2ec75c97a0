package practice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

//go:generate mockgen -source=store.go -destination=../mocks/practice/mock_store.go -package=mock_practice

// Store commits the outcome of one answer.
// Both the item update and the record insert are applied, or neither is.
type Store interface {
	CommitAnswer(ctx context.Context, item *vocabulary.Item, record *learning.PracticeRecord) error
}

// DBStore implements Store with a SQL transaction.
type DBStore struct {
	db *sqlx.DB
}

func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// CommitAnswer appends the record and writes the item's learning state in one transaction.
func (s *DBStore) CommitAnswer(ctx context.Context, item *vocabulary.Item, record *learning.PracticeRecord) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := learning.NewDBRepository(tx).Create(ctx, record); err != nil {
			return fmt.Errorf("learning.Create > %w", err)
		}
		if err := vocabulary.NewDBRepository(tx).UpdateLearningState(ctx, item); err != nil {
			return fmt.Errorf("vocabulary.UpdateLearningState > %w", err)
		}
		return nil
	})
}

// storeError classifies a repository failure. Errors that already carry a kind keep it,
// anything else is a transient store failure.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.StoreUnavailable(op, err)
}
