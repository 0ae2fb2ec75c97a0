// Package datasync provides import/export orchestration between vocabulary files and the item store.
package datasync

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	ItemsNew      int
	ItemsSkipped  int
	ItemsUpdated  int
	ItemsRejected int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
	// KeepLearningState imports the scheduling state of new items as written in the file.
	// Otherwise new items start unscheduled.
	KeepLearningState bool
	Origin            vocabulary.Origin
}

// Importer reads vocabulary items and writes them to the item store of one learner.
type Importer struct {
	items  vocabulary.Repository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(items vocabulary.Repository, writer io.Writer) *Importer {
	return &Importer{
		items:  items,
		writer: writer,
	}
}

// ImportItems creates new items and skips or updates the words the learner already has.
// Items failing validation are reported and counted, not imported.
func (imp *Importer) ImportItems(ctx context.Context, learnerID string, items []vocabulary.Item, opts ImportOptions) (*ImportResult, error) {
	if strings.TrimSpace(learnerID) == "" {
		return nil, apperr.Validation("learner id is required")
	}

	var result ImportResult
	for i := range items {
		if err := imp.importItem(ctx, learnerID, items[i], opts, &result); err != nil {
			return nil, fmt.Errorf("importItem(%s) > %w", items[i].Word, err)
		}
	}
	return &result, nil
}

func (imp *Importer) importItem(ctx context.Context, learnerID string, item vocabulary.Item, opts ImportOptions, result *ImportResult) error {
	item.ID = 0
	item.LearnerID = learnerID
	item.Word = strings.TrimSpace(item.Word)
	if item.Origin == "" {
		item.Origin = opts.Origin
	}
	if err := item.Validate(); err != nil {
		fmt.Fprintf(imp.writer, "  [REJECT]  %q: %v\n", item.Word, err)
		result.ItemsRejected++
		return nil
	}

	existing, err := imp.items.FindByWord(ctx, learnerID, item.Word)
	if err != nil {
		return fmt.Errorf("FindByWord(%s) > %w", item.Word, err)
	}

	if existing != nil {
		if !opts.UpdateExisting {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", item.Word)
			result.ItemsSkipped++
			return nil
		}
		mergeContent(existing, &item)
		if !opts.DryRun {
			if err := imp.items.Update(ctx, existing); err != nil {
				return fmt.Errorf("Update() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %q\n", item.Word)
		result.ItemsUpdated++
		return nil
	}

	if !opts.KeepLearningState {
		resetLearningState(&item)
	}
	if !opts.DryRun {
		if err := imp.items.Create(ctx, &item); err != nil {
			return fmt.Errorf("Create() > %w", err)
		}
	}
	fmt.Fprintf(imp.writer, "  [NEW]  %q\n", item.Word)
	result.ItemsNew++
	return nil
}

// mergeContent overwrites the descriptive fields of dst with the non-empty fields of src.
func mergeContent(dst, src *vocabulary.Item) {
	setString(&dst.Definition, src.Definition)
	setString(&dst.Translation, src.Translation)
	setString(&dst.Phonetic, src.Phonetic)
	setString(&dst.PartOfSpeech, src.PartOfSpeech)
	setString(&dst.Example, src.Example)
	setString(&dst.UsageNotes, src.UsageNotes)
	if len(src.Synonyms) > 0 {
		dst.Synonyms = src.Synonyms
	}
	if len(src.Antonyms) > 0 {
		dst.Antonyms = src.Antonyms
	}
	if src.Difficulty != "" {
		dst.Difficulty = src.Difficulty
	}
	dst.Bookmarked = dst.Bookmarked || src.Bookmarked
}

func setString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}

func resetLearningState(item *vocabulary.Item) {
	item.MasteryLevel = srs.MasteryNew
	item.EaseFactor = srs.DefaultEaseFactor
	item.Interval = 0
	item.Repetitions = 0
	item.NextReview = nil
	item.TotalReviews = 0
	item.CorrectReviews = 0
	item.LastReviewedAt = nil
}

// Exporter reads the item store and returns domain structs.
type Exporter struct {
	items vocabulary.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(items vocabulary.Repository) *Exporter {
	return &Exporter{items: items}
}

// Export reads all items of a learner.
func (e *Exporter) Export(ctx context.Context, learnerID string) ([]vocabulary.Item, error) {
	if strings.TrimSpace(learnerID) == "" {
		return nil, apperr.Validation("learner id is required")
	}
	items, err := e.items.FindAll(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("items.FindAll() > %w", err)
	}
	if items == nil {
		items = []vocabulary.Item{}
	}
	return items, nil
}
