// Package dictionary looks words up in WordsAPI on RapidAPI and enriches vocabulary items with the result.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/dictionary/rapidapi"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	RapidAPIHost string
	RapidAPIKey  string
}

type Reader struct {
	config    Config
	fileCache *FileCache
	client    *resty.Client
}

func NewReader(cacheDirectory string, config Config) *Reader {
	client := resty.New().SetTimeout(defaultTimeout)
	if config.RapidAPIHost != "" {
		client.SetBaseURL("https://" + config.RapidAPIHost)
	}
	return &Reader{
		config:    config,
		fileCache: NewFileCache(cacheDirectory),
		client:    client,
	}
}

// WithBaseURL points the reader at another endpoint.
func (r *Reader) WithBaseURL(baseURL string) *Reader {
	r.client.SetBaseURL(baseURL)
	return r
}

func (r *Reader) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	if r.config.RapidAPIHost == "" || r.config.RapidAPIKey == "" {
		return nil, apperr.Validation("dictionaries.rapidapi host and key are required to look up %q", word)
	}

	res, err := r.client.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", r.config.RapidAPIHost).
		SetHeader("x-rapidapi-key", r.config.RapidAPIKey).
		SetPathParam("word", word).
		Get("/words/{word}")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	switch res.StatusCode() {
	case http.StatusOK:
		return res.Body(), nil
	case http.StatusNotFound:
		return nil, apperr.NotFound("word %q not found in the dictionary", word)
	}
	return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
}

// Lookup returns the WordsAPI entry for a word, from the file cache when present.
func (r *Reader) Lookup(ctx context.Context, word string) (rapidapi.Response, error) {
	var resp rapidapi.Response
	word = strings.TrimSpace(word)
	if word == "" {
		return resp, apperr.Validation("word is required")
	}

	contents, err := r.fileCache.cache(word, func() ([]byte, error) {
		return r.lookupAPI(ctx, strings.ToLower(word))
	})
	if err != nil {
		return resp, fmt.Errorf("r.fileCache.cache > %w", err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}
