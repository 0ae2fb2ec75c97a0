package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_interface.go -package=mock_inference

// QuestionAugmenter builds exercise questions with an external model.
// Implementations are best effort: they may return fewer questions than requested.
type QuestionAugmenter interface {
	AugmentQuestions(ctx context.Context, request AugmentRequest) (AugmentResponse, error)
}

// AugmentItem is one vocabulary item a question is requested for
type AugmentItem struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition,omitempty"`
	PartOfSpeech string   `json:"part_of_speech,omitempty"`
	Example      string   `json:"example,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
	ExerciseType string   `json:"exercise_type"`
}

// AugmentRequest holds the items to build questions for
type AugmentRequest struct {
	Items []AugmentItem `json:"items"`
}

// AugmentedQuestion is a question built by the model, keyed by word
type AugmentedQuestion struct {
	Word          string   `json:"word"`
	ExerciseType  string   `json:"exercise_type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type AugmentResponse struct {
	Questions []AugmentedQuestion
}

// NopAugmenter never returns questions, so every question is generated locally.
type NopAugmenter struct{}

func (NopAugmenter) AugmentQuestions(context.Context, AugmentRequest) (AugmentResponse, error) {
	return AugmentResponse{}, nil
}

const (
	DefaultMaxRetryAttempts = 3
)
