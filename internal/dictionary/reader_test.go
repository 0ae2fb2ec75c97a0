package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

const happyResponse = `{
  "word": "happy",
  "pronunciation": {"all": "ˈhæpi"},
  "results": [
    {
      "definition": "enjoying or showing or marked by joy or pleasure",
      "partOfSpeech": "adjective",
      "synonyms": ["glad", "felicitous"],
      "antonyms": ["unhappy"],
      "examples": ["a happy smile"]
    }
  ]
}`

func TestReader_Lookup(t *testing.T) {
	tests := []struct {
		name         string
		word         string
		status       int
		body         string
		wantWord     string
		wantKind     apperr.Kind
		wantErr      bool
		wantAPICalls int
	}{
		{
			name:         "found",
			word:         " Happy ",
			status:       http.StatusOK,
			body:         happyResponse,
			wantWord:     "happy",
			wantAPICalls: 1,
		},
		{
			name:         "word not in the dictionary",
			word:         "happyy",
			status:       http.StatusNotFound,
			body:         `{"success": false, "message": "word not found"}`,
			wantErr:      true,
			wantKind:     apperr.KindNotFound,
			wantAPICalls: 1,
		},
		{
			name:         "server error",
			word:         "happy",
			status:       http.StatusInternalServerError,
			body:         `oops`,
			wantErr:      true,
			wantAPICalls: 1,
		},
		{
			name:     "empty word",
			word:     " ",
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Contains(t, r.URL.Path, "/words/happy")
				assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
				assert.Equal(t, "wordsapiv1.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			cacheDir := filepath.Join(t.TempDir(), "rapidapi")
			reader := NewReader(cacheDir, Config{
				RapidAPIHost: "wordsapiv1.p.rapidapi.com",
				RapidAPIKey:  "test-key",
			}).WithBaseURL(server.URL)

			got, err := reader.Lookup(context.Background(), tt.word)
			assert.Equal(t, tt.wantAPICalls, calls)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantKind != "" {
					assert.True(t, apperr.IsKind(err, tt.wantKind), err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWord, got.Word)
			assert.Equal(t, "ˈhæpi", got.Pronunciation.All)
			require.Len(t, got.Results, 1)
			assert.Equal(t, []string{"unhappy"}, got.Results[0].Antonyms)

			// The second lookup is served from the file cache.
			_, err = reader.Lookup(context.Background(), "happy")
			require.NoError(t, err)
			assert.Equal(t, 1, calls)
			_, err = os.Stat(filepath.Join(cacheDir, "happy.json"))
			assert.NoError(t, err)
		})
	}
}

func TestReader_Lookup_RequiresCredentials(t *testing.T) {
	reader := NewReader(t.TempDir(), Config{})
	_, err := reader.Lookup(context.Background(), "happy")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestReader_Lookup_CachedWithoutCredentials(t *testing.T) {
	cacheDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "happy.json"), []byte(happyResponse), 0644))

	got, err := NewReader(cacheDir, Config{}).Lookup(context.Background(), "happy")
	require.NoError(t, err)
	assert.Equal(t, "happy", got.Word)
}
