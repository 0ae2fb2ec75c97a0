package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/wordloop/internal/inference"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const DefaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(DefaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

// WithBaseURL points the client at a compatible endpoint
func (client *Client) WithBaseURL(baseURL string) *Client {
	client.httpClient.SetBaseURL(baseURL)
	return client
}

// WithTimeout sets the timeout of a single request
func (client *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		client.httpClient.SetTimeout(timeout)
	}
	return client
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Incomplete responses fail to decode
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// 5xx and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// AugmentQuestions implements the inference.QuestionAugmenter interface
func (client *Client) AugmentQuestions(
	ctx context.Context,
	params inference.AugmentRequest,
) (inference.AugmentResponse, error) {
	var result inference.AugmentResponse
	if err := retry.Do(
		func() error {
			response, err := client.augmentQuestions(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.AugmentResponse{}, err
	}
	return result, nil
}

const systemPrompt = `You write multiple-choice vocabulary exercises for English learners.

Return ONLY a JSON array. For each input item, include one object:
- "word": the word as provided
- "exercise_type": the exercise_type as provided
- "prompt": the question shown to the learner
- "options": 2 to 4 distinct answer choices, exactly one of them correct
- "correct_answer": the correct choice, copied exactly from "options"
- "explanation": one short sentence explaining the answer

Exercise types:
- word_to_meaning: show the word, the options are meanings
- meaning_to_word: show the meaning, the options are words
- sentence_completion: a sentence with the word replaced by "_____", the options are words
- synonym_match: show the word, the options are words and exactly one is a synonym
- context_usage: describe a situation, the options are words

Never reveal the correct answer in the prompt of meaning_to_word, sentence_completion or context_usage.
No text outside the JSON.`

type fewShotExample struct {
	userRequest     []inference.AugmentItem
	assistantAnswer []inference.AugmentedQuestion
}

var examples = []fewShotExample{
	{
		userRequest: []inference.AugmentItem{
			{
				Word:         "meticulous",
				Definition:   "showing great attention to detail",
				PartOfSpeech: "adjective",
				ExerciseType: "sentence_completion",
			},
		},
		assistantAnswer: []inference.AugmentedQuestion{
			{
				Word:          "meticulous",
				ExerciseType:  "sentence_completion",
				Prompt:        "She kept _____ records of every experiment.",
				Options:       []string{"careless", "meticulous", "hasty", "vague"},
				CorrectAnswer: "meticulous",
				Explanation:   "Meticulous means showing great attention to detail.",
			},
		},
	},
}

func (client *Client) getRequestBody(args inference.AugmentRequest) (ChatCompletionRequest, error) {
	messages := []Message{
		{
			Role:    RoleSystem,
			Content: systemPrompt,
		},
	}

	for _, example := range examples {
		userJSON, err := json.Marshal(example.userRequest)
		if err != nil {
			return ChatCompletionRequest{}, fmt.Errorf("failed to marshal example user request: %w", err)
		}
		assistantJSON, err := json.Marshal(example.assistantAnswer)
		if err != nil {
			return ChatCompletionRequest{}, fmt.Errorf("failed to marshal example assistant answer: %w", err)
		}

		messages = append(messages,
			Message{
				Role:    RoleUser,
				Content: string(userJSON),
			},
			Message{
				Role:    RoleAssistant,
				Content: string(assistantJSON),
			},
		)
	}

	userContent := bytes.NewBuffer(nil)
	if err := json.NewEncoder(userContent).Encode(args.Items); err != nil {
		return ChatCompletionRequest{}, fmt.Errorf("failed to marshal items: %w", err)
	}
	messages = append(messages, Message{
		Role:    RoleUser,
		Content: userContent.String(),
	})

	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.7,
		Messages:    messages,
	}, nil
}

func (client *Client) augmentQuestions(
	ctx context.Context,
	args inference.AugmentRequest,
) (inference.AugmentResponse, error) {
	if len(args.Items) == 0 {
		return inference.AugmentResponse{}, nil
	}

	requestBody, err := client.getRequestBody(args)
	if err != nil {
		return inference.AugmentResponse{}, fmt.Errorf("getRequestBody > %w", err)
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.AugmentResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.AugmentResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.AugmentResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.AugmentResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"itemCount", len(args.Items),
		"usage", responseBody.Usage,
	)

	var decoded []inference.AugmentedQuestion
	if err := json.NewDecoder(strings.NewReader(extractJSONArray(content))).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"itemCount", len(args.Items),
			"error", err)
		return inference.AugmentResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return inference.AugmentResponse{Questions: decoded}, nil
}

// extractJSONArray strips text around the outermost JSON array, such as markdown fences
func extractJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return content
	}
	return content[start : end+1]
}
