package srs

import "fmt"

// MasteryLevel is the learner-facing progress tier of a vocabulary item.
type MasteryLevel int

const (
	MasteryNew      MasteryLevel = 0
	MasteryLearning MasteryLevel = 1
	MasteryMastered MasteryLevel = 2
)

func (l MasteryLevel) String() string {
	switch l {
	case MasteryNew:
		return "new"
	case MasteryLearning:
		return "learning"
	case MasteryMastered:
		return "mastered"
	default:
		return fmt.Sprintf("MasteryLevel(%d)", int(l))
	}
}

// NextMasteryLevel applies the promotion rule after a review.
// repetitions is the value after scheduling. The level never decreases.
func NextMasteryLevel(current MasteryLevel, rating, repetitions int) MasteryLevel {
	candidate := current
	switch {
	case rating >= 4 && repetitions >= 3:
		candidate = MasteryMastered
	case rating >= 3:
		candidate = MasteryLearning
	}
	if candidate > current {
		return candidate
	}
	return current
}
