package practice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/testutil"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func words(items []vocabulary.Item) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Word)
	}
	return result
}

func TestPlanner_Plan_SQLite(t *testing.T) {
	ctx := context.Background()
	repository := vocabulary.NewDBRepository(testutil.NewTestDB(t))

	yesterday := testToday.AddDate(0, 0, -1)
	tomorrow := testToday.AddDate(0, 0, 1)
	fixtures := []struct {
		learnerID  string
		word       string
		nextReview *time.Time
	}{
		{learnerID: "learner-1", word: "tomorrow", nextReview: datePtr(tomorrow)},
		{learnerID: "learner-1", word: "today", nextReview: datePtr(testToday)},
		{learnerID: "learner-1", word: "yesterday", nextReview: datePtr(yesterday)},
		{learnerID: "learner-1", word: "never"},
		{learnerID: "learner-2", word: "elsewhere", nextReview: datePtr(yesterday)},
	}
	for _, f := range fixtures {
		require.NoError(t, repository.Create(ctx, &vocabulary.Item{
			LearnerID:  f.learnerID,
			Word:       f.word,
			Definition: "definition of " + f.word,
			NextReview: f.nextReview,
		}))
	}

	tests := []struct {
		name        string
		targetCount int
		wantReview  []string
	}{
		{
			name:        "never-scheduled first, then oldest due, future excluded",
			targetCount: 10,
			wantReview:  []string{"never", "yesterday", "today"},
		},
		{
			name:        "target truncates the review set",
			targetCount: 2,
			wantReview:  []string{"never", "yesterday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestPlanner(repository).Plan(ctx, "learner-1", tt.targetCount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantReview, words(got.ReviewItems))
			assert.Empty(t, got.NewItems)
			assert.Equal(t, len(tt.wantReview), got.TotalTarget)
		})
	}
}
