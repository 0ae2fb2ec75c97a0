package practice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func TestDBStore_CommitAnswer(t *testing.T) {
	answeredAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		wantKind  apperr.Kind
	}{
		{
			name: "record and item committed together",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO practice_records").WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("UPDATE vocabulary_items SET mastery_level").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "item update failure rolls back the record",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO practice_records").WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("UPDATE vocabulary_items SET mastery_level").WillReturnError(errors.New("deadlock"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "missing item rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO practice_records").WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("UPDATE vocabulary_items SET mastery_level").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name: "begin failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			tt.setupMock(mock)

			store := NewDBStore(sqlx.NewDb(db, "sqlite3"))
			item := &vocabulary.Item{ID: 3, LearnerID: "learner-1", Word: "happy", EaseFactor: 2.5}
			record := &learning.PracticeRecord{LearnerID: "learner-1", VocabularyID: 3, AnsweredAt: answeredAt}

			err = store.CommitAnswer(context.Background(), item, record)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantKind != "" {
					assert.True(t, apperr.IsKind(err, tt.wantKind))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(7), record.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, storeError("op", nil))

	err := storeError("op", context.DeadlineExceeded)
	assert.True(t, apperr.IsKind(err, apperr.KindStoreUnavailable))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	notFound := apperr.NotFound("vocabulary item 1 not found")
	assert.Same(t, notFound, storeError("op", notFound))
}
