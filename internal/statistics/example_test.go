package statistics_test

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/statistics"
)

func ExampleCalculateStatistics() {
	answeredAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	records := []learning.PracticeRecord{
		{VocabularyID: 1, IsCorrect: true, AnsweredAt: answeredAt},
		{VocabularyID: 1, IsCorrect: true, AnsweredAt: answeredAt.AddDate(0, 0, 1)},
		{VocabularyID: 2, IsCorrect: false, AnsweredAt: answeredAt.AddDate(0, 0, 1)},
	}

	result := statistics.CalculateStatistics(records, 0, 0)
	for _, stat := range result.Periods {
		fmt.Printf("Period %s: %d new words, %d relearns, accuracy %.2f\n",
			stat.Period, stat.NewWordsCount, stat.RelearnsCount, stat.Accuracy())
	}
	fmt.Printf("Recent accuracy: %.2f\n", statistics.RecentAccuracy(records))
	// Output:
	// Period 2025-01: 1 new words, 1 relearns, accuracy 0.67
	// Recent accuracy: 0.67
}
