// Package statistics aggregates practice records and vocabulary items into progress figures.
package statistics

import (
	"fmt"
	"sort"
	"time"

	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// LearningStatistics holds statistics for a time period
type LearningStatistics struct {
	Period         string // "2025-01"
	Answers        int    // Answers submitted in the period
	CorrectAnswers int
	NewWordsCount  int // First correct answer of a word
	NewWordsUnique int
	RelearnsCount  int // Later correct answers
	RelearnsUnique int
}

// Accuracy returns the share of correct answers in the period.
func (s LearningStatistics) Accuracy() float64 {
	return ratio(s.CorrectAnswers, s.Answers)
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	Answers        int
	CorrectAnswers int
	NewWordsCount  int
	NewWordsUnique int // Deduplicated across periods
	RelearnsCount  int
	RelearnsUnique int // Deduplicated across periods
}

// Accuracy returns the share of correct answers across all periods.
func (s AggregateStatistics) Accuracy() float64 {
	return ratio(s.CorrectAnswers, s.Answers)
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []LearningStatistics
	Aggregate AggregateStatistics
}

// periodData tracks counts per period
type periodData struct {
	answers        int
	correctAnswers int
	newWordsTotal  int
	newWordsUnique map[int64]struct{}
	relearnsTotal  int
	relearnsUnique map[int64]struct{}
}

// RecentAccuracy returns the share of correct answers among records, or 0 without history.
func RecentAccuracy(records []learning.PracticeRecord) float64 {
	correct := 0
	for _, record := range records {
		if record.IsCorrect {
			correct++
		}
	}
	return ratio(correct, len(records))
}

// CalculateStatistics calculates monthly statistics from practice records.
// It accepts optional year and month filters (0 means no filter).
// A "new word" is counted for the first correct answer of a vocabulary item and
// a "relearn" for every later correct answer.
func CalculateStatistics(records []learning.PracticeRecord, year, month int) StatisticsResult {
	sorted := append([]learning.PracticeRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AnsweredAt.Before(sorted[j].AnsweredAt)
	})

	stats := make(map[string]*periodData)
	globalNewWordsUnique := make(map[int64]struct{})
	globalRelearnsUnique := make(map[int64]struct{})
	learned := make(map[int64]bool)

	for _, record := range sorted {
		if record.AnsweredAt.IsZero() {
			continue
		}
		firstSuccess := record.IsCorrect && !learned[record.VocabularyID]
		if record.IsCorrect {
			learned[record.VocabularyID] = true
		}

		logYear := record.AnsweredAt.Year()
		logMonth := int(record.AnsweredAt.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		ensurePeriodExists(stats, period)
		data := stats[period]
		data.answers++
		if !record.IsCorrect {
			continue
		}
		data.correctAnswers++

		if firstSuccess {
			data.newWordsTotal++
			data.newWordsUnique[record.VocabularyID] = struct{}{}
			globalNewWordsUnique[record.VocabularyID] = struct{}{}
		} else {
			data.relearnsTotal++
			data.relearnsUnique[record.VocabularyID] = struct{}{}
			globalRelearnsUnique[record.VocabularyID] = struct{}{}
		}
	}

	return buildResult(stats, globalNewWordsUnique, globalRelearnsUnique)
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if stats[period] == nil {
		stats[period] = &periodData{
			newWordsUnique: make(map[int64]struct{}),
			relearnsUnique: make(map[int64]struct{}),
		}
	}
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalNewWordsUnique, globalRelearnsUnique map[int64]struct{}) StatisticsResult {
	periods := make([]LearningStatistics, 0, len(stats))

	var aggregate AggregateStatistics
	for period, data := range stats {
		periods = append(periods, LearningStatistics{
			Period:         period,
			Answers:        data.answers,
			CorrectAnswers: data.correctAnswers,
			NewWordsCount:  data.newWordsTotal,
			NewWordsUnique: len(data.newWordsUnique),
			RelearnsCount:  data.relearnsTotal,
			RelearnsUnique: len(data.relearnsUnique),
		})
		aggregate.Answers += data.answers
		aggregate.CorrectAnswers += data.correctAnswers
		aggregate.NewWordsCount += data.newWordsTotal
		aggregate.RelearnsCount += data.relearnsTotal
	}
	aggregate.NewWordsUnique = len(globalNewWordsUnique)
	aggregate.RelearnsUnique = len(globalRelearnsUnique)

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}

// ItemSummary counts a learner's items by mastery level and due state.
type ItemSummary struct {
	Total      int
	New        int
	Learning   int
	Mastered   int
	DueToday   int
	Bookmarked int
}

// SummarizeItems builds an ItemSummary for today.
func SummarizeItems(items []vocabulary.Item, today time.Time) ItemSummary {
	var summary ItemSummary
	for i := range items {
		item := &items[i]
		summary.Total++
		switch item.MasteryLevel {
		case srs.MasteryNew:
			summary.New++
		case srs.MasteryLearning:
			summary.Learning++
		case srs.MasteryMastered:
			summary.Mastered++
		}
		if item.IsDue(today) {
			summary.DueToday++
		}
		if item.Bookmarked {
			summary.Bookmarked++
		}
	}
	return summary
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
