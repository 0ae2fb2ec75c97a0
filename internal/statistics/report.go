package statistics

import (
	"sort"
	"time"

	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

const (
	DefaultReportDueLimit        = 20
	DefaultReportStrugglingLimit = 10
	// StrugglingAccuracy is the accuracy below which a reviewed item is listed as struggling.
	StrugglingAccuracy = 0.6
)

// ItemProgress is the progress of one item as shown in a report.
type ItemProgress struct {
	Word         string
	Mastery      srs.MasteryLevel
	Accuracy     float64
	TotalReviews int
	NextReview   *time.Time
}

// Report is a learner's progress report.
type Report struct {
	LearnerID       string
	GeneratedAt     time.Time
	Summary         ItemSummary
	Statistics      StatisticsResult
	DueItems        []ItemProgress
	StrugglingItems []ItemProgress
}

// BuildReport summarizes items and records of one learner at now.
func BuildReport(learnerID string, items []vocabulary.Item, records []learning.PracticeRecord, now time.Time) Report {
	today := srs.Date(now)
	report := Report{
		LearnerID:       learnerID,
		GeneratedAt:     now,
		Summary:         SummarizeItems(items, today),
		Statistics:      CalculateStatistics(records, 0, 0),
		DueItems:        []ItemProgress{},
		StrugglingItems: []ItemProgress{},
	}

	var due, struggling []vocabulary.Item
	for _, item := range items {
		if item.IsDue(today) {
			due = append(due, item)
		}
		if item.TotalReviews > 0 && item.Accuracy() < StrugglingAccuracy {
			struggling = append(struggling, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].NextReview, due[j].NextReview
		if (a == nil) != (b == nil) {
			return a == nil
		}
		if a != nil && !a.Equal(*b) {
			return a.Before(*b)
		}
		return due[i].Word < due[j].Word
	})
	sort.SliceStable(struggling, func(i, j int) bool {
		if struggling[i].Accuracy() != struggling[j].Accuracy() {
			return struggling[i].Accuracy() < struggling[j].Accuracy()
		}
		return struggling[i].Word < struggling[j].Word
	})

	for i := 0; i < len(due) && i < DefaultReportDueLimit; i++ {
		report.DueItems = append(report.DueItems, progressOf(due[i]))
	}
	for i := 0; i < len(struggling) && i < DefaultReportStrugglingLimit; i++ {
		report.StrugglingItems = append(report.StrugglingItems, progressOf(struggling[i]))
	}
	return report
}

func progressOf(item vocabulary.Item) ItemProgress {
	return ItemProgress{
		Word:         item.Word,
		Mastery:      item.MasteryLevel,
		Accuracy:     item.Accuracy(),
		TotalReviews: item.TotalReviews,
		NextReview:   item.NextReview,
	}
}
