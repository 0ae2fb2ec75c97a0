package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Replayer rebuilds the learning state of one item from its practice records.
type Replayer interface {
	Replay(ctx context.Context, learnerID string, vocabularyID int64) (*vocabulary.Item, error)
}

// ReplayLearningState replays every item of the learner and prints the items whose
// learning state changed. Only word limits the run to one item when it is not empty.
func ReplayLearningState(ctx context.Context, items vocabulary.Repository, replayer Replayer, learnerID, word string, w io.Writer) error {
	var targets []vocabulary.Item
	if word != "" {
		item, err := items.FindByWord(ctx, learnerID, word)
		if err != nil {
			return fmt.Errorf("items.FindByWord(%s) > %w", word, err)
		}
		if item == nil {
			return fmt.Errorf("word %q is not in the vocabulary of %s", word, learnerID)
		}
		targets = []vocabulary.Item{*item}
	} else {
		all, err := items.FindAll(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("items.FindAll(%s) > %w", learnerID, err)
		}
		targets = all
	}

	changed := 0
	for _, item := range targets {
		replayed, err := replayer.Replay(ctx, learnerID, item.ID)
		if err != nil {
			return fmt.Errorf("replayer.Replay(%s) > %w", item.Word, err)
		}
		if replayed.State() == item.State() && replayed.MasteryLevel == item.MasteryLevel {
			continue
		}
		changed++
		_, _ = fmt.Fprintf(w, "Replayed: %s (ease %.2f -> %.2f, interval %d -> %d, %s -> %s)\n",
			item.Word,
			item.EaseFactor, replayed.EaseFactor,
			item.Interval, replayed.Interval,
			item.MasteryLevel, replayed.MasteryLevel,
		)
	}

	_, _ = fmt.Fprintf(w, "Replay complete! %d of %d items changed\n", changed, len(targets))
	return nil
}
