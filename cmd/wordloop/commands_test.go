package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/datasync"
	"github.com/at-ishikawa/wordloop/internal/testutil"
)

// setupMigratedConfig writes a SQLite config into a temp dir and applies the migrations.
func setupMigratedConfig(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	out, err := runCommand(t, "", "migrate", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Migration complete!")
	return tmpDir, cfgPath
}

func TestMigrateCommand_Idempotent(t *testing.T) {
	_, cfgPath := setupMigratedConfig(t)

	out, err := runCommand(t, "", "migrate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Migration complete! 0 applied")
}

func TestVocabCommands(t *testing.T) {
	tmpDir, cfgPath := setupMigratedConfig(t)
	vocabularyPath := testutil.CreateVocabularyFile(t, tmpDir, testutil.SampleItems())

	out, err := runCommand(t, "", "vocab", "import", vocabularyPath, "--dry-run", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported vocabulary.yml: 4 new, 0 updated, 0 skipped, 0 rejected")

	out, err = runCommand(t, "", "vocab", "import", vocabularyPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `[NEW]  "happy"`)
	assert.Contains(t, out, "4 new")

	out, err = runCommand(t, "", "vocab", "import", vocabularyPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "0 new, 0 updated, 4 skipped, 0 rejected")

	out, err = runCommand(t, "", "vocab", "add", "lonely",
		"--definition", "sad because one has no friends",
		"--synonyms", "alone,isolated",
		"--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `[NEW]  "lonely"`)

	exportPath := filepath.Join(tmpDir, "exports", "words.xlsx")
	out, err = runCommand(t, "", "vocab", "export", exportPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 5 words to "+exportPath)

	exported, err := datasync.ReadFile(exportPath, datasync.FormatXLSX)
	require.NoError(t, err)
	var words []string
	for _, item := range exported {
		words = append(words, item.Word)
	}
	assert.ElementsMatch(t, []string{"happy", "meticulous", "wander", "serendipity", "lonely"}, words)

	out, err = runCommand(t, "", "vocab", "export", "--config", cfgPath)
	require.NoError(t, err)
	defaultExport := filepath.Join(tmpDir, "exports", "test-learner.yaml")
	assert.Contains(t, out, "Exported 5 words to "+defaultExport)
	assert.FileExists(t, defaultExport)
}

func TestVocabImport_UnknownFormat(t *testing.T) {
	_, err := runCommand(t, "", "vocab", "import", "words.csv")
	assert.ErrorContains(t, err, `unknown format "csv"`)
}

func TestPlanPracticeAndReport(t *testing.T) {
	tmpDir, cfgPath := setupMigratedConfig(t)
	vocabularyPath := testutil.CreateVocabularyFile(t, tmpDir, testutil.SampleItems())
	_, err := runCommand(t, "", "vocab", "import", vocabularyPath, "--config", cfgPath)
	require.NoError(t, err)

	out, err := runCommand(t, "", "plan", "--count", "2", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Plan for test-learner on ")
	assert.Contains(t, out, ": 2 words")
	assert.Contains(t, out, "Reviews (2):\n  - happy (new, due now)\n  - meticulous (new, due now)\n")
	assert.Contains(t, out, "New words (0):")

	out, err = runCommand(t, "", "plan", "--count", "10", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, ": 4 words")
	assert.Contains(t, out, "Reviews (4):")
	assert.Contains(t, out, "New words (0):")

	out, err = runCommand(t, "1\n1\n1\n1\n", "practice", "--count", "4", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Starting practice with")
	assert.Contains(t, out, "Finished: ")

	out, err = runCommand(t, "", "analyze", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Learning Statistics Report")

	out, err = runCommand(t, "", "replay", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Replay complete! 0 of 4 items changed")

	reportPath := filepath.Join(tmpDir, "reports", "progress.md")
	out, err = runCommand(t, "", "report", "--output", reportPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+reportPath)
	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Progress report: test-learner")
}

func TestScoreCommand(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "quiz session",
			args: []string{"--correct", "8", "--total", "10", "--time", "50", "--streak", "4"},
			want: "177\n",
		},
		{
			name: "matching session",
			args: []string{"--game-type", "matching", "--correct", "4", "--total", "4", "--time", "30"},
			want: "105\n",
		},
		{
			name:    "unknown game type",
			args:    []string{"--game-type", "chess", "--total", "1"},
			wantErr: `unknown game type "chess"`,
		},
		{
			name:    "invalid session",
			args:    []string{"--correct", "3", "--total", "2"},
			wantErr: "correct count must be between 0 and 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"score", "--config", cfgPath}, tt.args...)
			out, err := runCommand(t, "", args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAnalyzeCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "month without year", args: []string{"--month", "3"}, wantErr: "--month requires --year to be specified"},
		{name: "month out of range", args: []string{"--year", "2025", "--month", "13"}, wantErr: "--month must be between 1 and 12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, "", append([]string{"analyze"}, tt.args...)...)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCommands_BrokenConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	for _, args := range [][]string{
		{"plan"},
		{"practice"},
		{"score", "--total", "1"},
		{"migrate"},
		{"replay"},
		{"report"},
		{"vocab", "export"},
		{"dictionary", "lookup", "happy"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := runCommand(t, "", append(args, "--config", cfgPath)...)
			assert.ErrorContains(t, err, "failed to load configuration")
		})
	}
}
