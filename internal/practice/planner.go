// Package practice plans daily practice, records answers and exposes the learning engine.
package practice

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

const DefaultTargetCount = 20

// DailyPractice is the set of items a learner practices on one day.
type DailyPractice struct {
	LearnerID   string            `json:"learner_id"`
	Date        time.Time         `json:"date"`
	ReviewItems []vocabulary.Item `json:"review_items"`
	NewItems    []vocabulary.Item `json:"new_items"`
	TotalTarget int               `json:"total_target"`
	Completed   int               `json:"completed"`
}

// Items returns the review items followed by the new items.
func (p *DailyPractice) Items() []vocabulary.Item {
	items := make([]vocabulary.Item, 0, len(p.ReviewItems)+len(p.NewItems))
	items = append(items, p.ReviewItems...)
	return append(items, p.NewItems...)
}

// Planner chooses the items due today.
type Planner struct {
	items         vocabulary.Repository
	defaultTarget int
	now           func() time.Time
}

func NewPlanner(items vocabulary.Repository, defaultTarget int) *Planner {
	if defaultTarget <= 0 {
		defaultTarget = DefaultTargetCount
	}
	return &Planner{
		items:         items,
		defaultTarget: defaultTarget,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Plan returns today's practice. The review set holds never-scheduled and due items,
// never-scheduled first. When it is smaller than targetCount it is topped up with
// never-scheduled items, newest first. A targetCount of 0 uses the default.
func (p *Planner) Plan(ctx context.Context, learnerID string, targetCount int) (*DailyPractice, error) {
	if strings.TrimSpace(learnerID) == "" {
		return nil, apperr.Validation("learner id is required")
	}
	if targetCount < 0 {
		return nil, apperr.Validation("target count must not be negative, got %d", targetCount)
	}
	if targetCount == 0 {
		targetCount = p.defaultTarget
	}

	today := srs.Date(p.now().UTC())
	reviewItems, err := p.items.FindDue(ctx, learnerID, today, targetCount)
	if err != nil {
		return nil, storeError("find due items", err)
	}

	var newItems []vocabulary.Item
	if remaining := targetCount - len(reviewItems); remaining > 0 {
		excludeIDs := make([]int64, 0, len(reviewItems))
		for _, item := range reviewItems {
			excludeIDs = append(excludeIDs, item.ID)
		}
		newItems, err = p.items.FindUnscheduled(ctx, learnerID, excludeIDs, remaining)
		if err != nil {
			return nil, storeError("find unscheduled items", err)
		}
	}
	if reviewItems == nil {
		reviewItems = []vocabulary.Item{}
	}
	if newItems == nil {
		newItems = []vocabulary.Item{}
	}

	slog.Default().Debug("planned daily practice",
		"learnerID", learnerID,
		"reviewCount", len(reviewItems),
		"newCount", len(newItems),
	)
	return &DailyPractice{
		LearnerID:   learnerID,
		Date:        today,
		ReviewItems: reviewItems,
		NewItems:    newItems,
		TotalTarget: len(reviewItems) + len(newItems),
	}, nil
}
