package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func mustParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func record(vocabularyID int64, date string, correct bool) learning.PracticeRecord {
	return learning.PracticeRecord{
		VocabularyID: vocabularyID,
		AnsweredAt:   mustParseDate(date),
		IsCorrect:    correct,
	}
}

func TestRecentAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		records []learning.PracticeRecord
		want    float64
	}{
		{name: "no history", want: 0},
		{
			name: "mixed answers",
			records: []learning.PracticeRecord{
				record(1, "2025-01-01", true),
				record(2, "2025-01-01", false),
				record(3, "2025-01-01", true),
				record(4, "2025-01-01", true),
			},
			want: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecentAccuracy(tt.records))
		})
	}
}

func TestCalculateStatistics(t *testing.T) {
	tests := []struct {
		name              string
		records           []learning.PracticeRecord
		year              int
		month             int
		expectedPeriods   []LearningStatistics
		expectedAggregate AggregateStatistics
	}{
		{
			name:              "no records",
			expectedPeriods:   []LearningStatistics{},
			expectedAggregate: AggregateStatistics{},
		},
		{
			name: "first success is a new word and later successes are relearns",
			records: []learning.PracticeRecord{
				record(1, "2025-01-20", true),
				record(1, "2025-01-15", false),
				record(1, "2025-01-18", true),
			},
			expectedPeriods: []LearningStatistics{
				{
					Period:         "2025-01",
					Answers:        3,
					CorrectAnswers: 2,
					NewWordsCount:  1,
					NewWordsUnique: 1,
					RelearnsCount:  1,
					RelearnsUnique: 1,
				},
			},
			expectedAggregate: AggregateStatistics{
				Answers:        3,
				CorrectAnswers: 2,
				NewWordsCount:  1,
				NewWordsUnique: 1,
				RelearnsCount:  1,
				RelearnsUnique: 1,
			},
		},
		{
			name: "periods sorted newest first",
			records: []learning.PracticeRecord{
				record(1, "2025-01-10", true),
				record(2, "2025-02-10", true),
				record(1, "2025-02-11", true),
				record(1, "2025-02-12", true),
			},
			expectedPeriods: []LearningStatistics{
				{Period: "2025-02", Answers: 3, CorrectAnswers: 3, NewWordsCount: 1, NewWordsUnique: 1, RelearnsCount: 2, RelearnsUnique: 1},
				{Period: "2025-01", Answers: 1, CorrectAnswers: 1, NewWordsCount: 1, NewWordsUnique: 1},
			},
			expectedAggregate: AggregateStatistics{
				Answers:        4,
				CorrectAnswers: 4,
				NewWordsCount:  2,
				NewWordsUnique: 2,
				RelearnsCount:  2,
				RelearnsUnique: 1,
			},
		},
		{
			name: "month filter keeps first success from earlier months",
			records: []learning.PracticeRecord{
				record(1, "2025-01-10", true),
				record(1, "2025-02-11", true),
			},
			year:  2025,
			month: 2,
			expectedPeriods: []LearningStatistics{
				{Period: "2025-02", Answers: 1, CorrectAnswers: 1, RelearnsCount: 1, RelearnsUnique: 1},
			},
			expectedAggregate: AggregateStatistics{
				Answers:        1,
				CorrectAnswers: 1,
				RelearnsCount:  1,
				RelearnsUnique: 1,
			},
		},
		{
			name: "year filter",
			records: []learning.PracticeRecord{
				record(1, "2024-12-31", false),
				record(2, "2025-03-01", true),
			},
			year: 2024,
			expectedPeriods: []LearningStatistics{
				{Period: "2024-12", Answers: 1},
			},
			expectedAggregate: AggregateStatistics{Answers: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStatistics(tt.records, tt.year, tt.month)
			assert.Equal(t, tt.expectedPeriods, got.Periods)
			assert.Equal(t, tt.expectedAggregate, got.Aggregate)
		})
	}
}

func TestLearningStatistics_Accuracy(t *testing.T) {
	assert.Equal(t, 0.5, LearningStatistics{Answers: 4, CorrectAnswers: 2}.Accuracy())
	assert.Zero(t, AggregateStatistics{}.Accuracy())
}

func TestSummarizeItems(t *testing.T) {
	today := mustParseDate("2025-03-10")
	tomorrow := mustParseDate("2025-03-11")
	yesterday := mustParseDate("2025-03-09")

	items := []vocabulary.Item{
		{MasteryLevel: srs.MasteryNew},
		{MasteryLevel: srs.MasteryLearning, NextReview: &yesterday, Bookmarked: true},
		{MasteryLevel: srs.MasteryMastered, NextReview: &tomorrow},
		{MasteryLevel: srs.MasteryLearning, NextReview: &tomorrow},
	}

	assert.Equal(t, ItemSummary{
		Total:      4,
		New:        1,
		Learning:   2,
		Mastered:   1,
		DueToday:   2,
		Bookmarked: 1,
	}, SummarizeItems(items, today))
}
