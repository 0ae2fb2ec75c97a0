// Package testutil provides shared test helpers for creating config files, databases and vocabulary fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// SetupTestConfig creates a minimal config file backed by a SQLite database in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"dictionaries", "reports", "exports"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`learner:
  id: test-learner
database:
  driver: sqlite3
  path: %s
dictionaries:
  rapidapi:
    cache_directory: %s
outputs:
  report_directory: %s
  export_directory: %s
`,
		filepath.Join(tmpDir, "wordloop.db"),
		filepath.Join(tmpDir, "dictionaries"),
		filepath.Join(tmpDir, "reports"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// NewTestDB opens a migrated SQLite database in a temporary directory.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "wordloop.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}

// CreateVocabularyFile writes items as a YAML vocabulary file and returns its path.
func CreateVocabularyFile(t *testing.T, dir string, items []vocabulary.Item) string {
	t.Helper()

	content, err := yaml.Marshal(items)
	require.NoError(t, err)
	path := filepath.Join(dir, "vocabulary.yml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// SampleItems returns a small vocabulary with definitions, examples and synonyms.
func SampleItems() []vocabulary.Item {
	return []vocabulary.Item{
		{
			Word:         "happy",
			Definition:   "feeling or showing pleasure",
			PartOfSpeech: "adjective",
			Example:      "She was happy to see her friends.",
			Synonyms:     vocabulary.StringList{"glad", "cheerful"},
			Difficulty:   vocabulary.DifficultyBeginner,
		},
		{
			Word:         "meticulous",
			Definition:   "showing great attention to detail",
			PartOfSpeech: "adjective",
			Example:      "He kept meticulous records.",
			Synonyms:     vocabulary.StringList{"careful", "thorough"},
			Difficulty:   vocabulary.DifficultyAdvanced,
		},
		{
			Word:         "wander",
			Definition:   "to walk slowly without a clear direction",
			PartOfSpeech: "verb",
			Example:      "They wander around the old town.",
			Difficulty:   vocabulary.DifficultyIntermediate,
		},
		{
			Word:         "serendipity",
			Definition:   "the occurrence of events by chance in a happy way",
			PartOfSpeech: "noun",
			Difficulty:   vocabulary.DifficultyAdvanced,
		},
	}
}
