package exercise

import (
	"math"
	"math/rand"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Tier groups the exercise types offered at one learner level.
type Tier string

const (
	TierBasic         Tier = "basic"
	TierIntermediate  Tier = "intermediate"
	TierReinforcement Tier = "reinforcement"
)

// SelectorConfig holds the accuracy thresholds between tiers.
type SelectorConfig struct {
	BasicAccuracy     float64 `mapstructure:"basic_accuracy" validate:"gte=0,lte=1"`
	ReinforceAccuracy float64 `mapstructure:"reinforce_accuracy" validate:"gtefield=BasicAccuracy,lte=1"`
}

// DefaultSelectorConfig returns thresholds of 0.6 and 0.8.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		BasicAccuracy:     0.6,
		ReinforceAccuracy: 0.8,
	}
}

// Selector picks an exercise type for an item. It is safe for concurrent use.
type Selector struct {
	config SelectorConfig
	rnd    *lockedRand
}

// NewSelector creates a Selector. A nil rnd uses a time-seeded source.
func NewSelector(config SelectorConfig, rnd *rand.Rand) *Selector {
	return &Selector{
		config: config,
		rnd:    newLockedRand(rnd),
	}
}

// TierFor resolves the tier for a mastery level and recent accuracy in [0, 1].
func (s *Selector) TierFor(mastery srs.MasteryLevel, accuracy float64) (Tier, error) {
	if math.IsNaN(accuracy) || accuracy < 0 || accuracy > 1 {
		return "", apperr.Validation("recent accuracy must be between 0 and 1, got %v", accuracy)
	}
	switch {
	case mastery == srs.MasteryNew || accuracy < s.config.BasicAccuracy:
		return TierBasic, nil
	case mastery == srs.MasteryLearning || accuracy < s.config.ReinforceAccuracy:
		return TierIntermediate, nil
	default:
		return TierReinforcement, nil
	}
}

// Candidates returns the exercise types of a tier available for item.
func Candidates(tier Tier, item vocabulary.Item) []Type {
	hasSynonyms := len(item.Synonyms) > 0
	var types []Type
	switch tier {
	case TierBasic:
		types = []Type{TypeWordToMeaning, TypeMeaningToWord}
	case TierIntermediate:
		types = []Type{TypeSentenceCompletion, TypeContextUsage}
		if hasSynonyms {
			types = append(types, TypeSynonymMatch)
		}
	case TierReinforcement:
		types = []Type{TypeContextUsage, TypeSentenceCompletion}
		if hasSynonyms {
			types = append(types, TypeSynonymMatch)
		}
	}
	return types
}

// Select chooses uniformly among the candidate types of the item's tier.
func (s *Selector) Select(item vocabulary.Item, accuracy float64) (Type, error) {
	tier, err := s.TierFor(item.MasteryLevel, accuracy)
	if err != nil {
		return "", err
	}
	types := Candidates(tier, item)
	return types[s.rnd.Intn(len(types))], nil
}
