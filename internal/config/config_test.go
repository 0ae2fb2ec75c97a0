package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/game"
	"github.com/at-ishikawa/wordloop/internal/practice"
)

func defaultConfig() *Config {
	return &Config{
		Learner: LearnerConfig{ID: "default"},
		Server: ServerConfig{
			Port:                   8080,
			CORS:                   CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			RateLimit:              RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
			ShutdownTimeoutSeconds: 10,
		},
		Database: database.Config{
			Driver:   database.DriverSQLite,
			Path:     "wordloop.db",
			Host:     "localhost",
			Database: "wordloop",
			Username: "wordloop",
		},
		OpenAI: OpenAIConfig{
			Model:            "gpt-4o-mini",
			MaxRetryAttempts: 2,
			TimeoutSeconds:   30,
		},
		Dictionaries: DictionariesConfig{
			RapidAPI: RapidAPIConfig{CacheDirectory: filepath.Join("dictionaries", "rapidapi")},
		},
		Engine: practice.DefaultConfig(),
		Games: GamesConfig{
			Quiz:              game.QuizBundle(),
			Matching:          game.MatchingBundle(),
			SessionTTLMinutes: 1440,
		},
		Outputs: OutputsConfig{
			ReportDirectory: filepath.Join("outputs", "reports"),
			ExportDirectory: filepath.Join("outputs", "exports"),
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "no config file uses defaults",
			want: defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `learner:
  id: learner-1
database:
  driver: mysql
  host: db.internal
  port: 3306
  database: wordloop
  username: app
engine:
  target_count: 30
  scheduler:
    max_interval: 180
games:
  quiz:
    perfect_score_bonus: 200
  session_ttl_minutes: 30
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Learner.ID = "learner-1"
				cfg.Database = database.Config{
					Driver:   database.DriverMySQL,
					Path:     "wordloop.db",
					Host:     "db.internal",
					Port:     3306,
					Database: "wordloop",
					Username: "app",
				}
				cfg.Engine.TargetCount = 30
				cfg.Engine.Scheduler.MaxInterval = 180
				cfg.Games.Quiz.PerfectScoreBonus = 200
				cfg.Games.SessionTTLMinutes = 30
				return cfg
			},
		},
		{
			name:            "explicit config file and secrets from the environment",
			useExplicitPath: true,
			configContent: `server:
  port: 9090
`,
			env: map[string]string{
				"OPENAI_API_KEY": "sk-test",
				"DB_PASSWORD":    "secret",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9090
				cfg.OpenAI.APIKey = "sk-test"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `engine:
  target_count: 3
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid values are reported with their config names",
			configContent: `engine:
  target_count: 0
  selector:
    basic_accuracy: 0.9
    reinforce_accuracy: 0.5
games:
  matching:
    speed_basis: hourly
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"target_count",
				"reinforce_accuracy",
				"speed_basis",
			},
		},
		{
			name: "missing report template",
			configContent: `templates:
  report_template: does/not/exist.md
`,
			wantErr:           true,
			wantErrorContains: []string{`templates.report_template must be a readable file, got "does/not/exist.md"`},
		},
		{
			name: "report template below a regular file",
			configContent: `templates:
  report_template: config.yaml/report.md.tmpl
`,
			wantErr:           true,
			wantErrorContains: []string{`templates.report_template must be a readable file, got "config.yaml/report.md.tmpl"`},
		},
		{
			name: "report template is a directory",
			configContent: `templates:
  report_template: .
`,
			wantErr:           true,
			wantErrorContains: []string{`templates.report_template must be a readable file, got "."`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			for _, key := range []string{"OPENAI_API_KEY", "OPENAI_MODEL", "DB_PASSWORD", "RAPID_API_HOST", "RAPID_API_KEY"} {
				if _, ok := tt.env[key]; !ok {
					t.Setenv(key, "")
					require.NoError(t, os.Unsetenv(key))
				}
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "wordloop.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			got, err := Load(configPath)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestGamesConfig_Bundles(t *testing.T) {
	cfg := defaultConfig()
	bundles := cfg.Games.Bundles()
	assert.Equal(t, game.DefaultBundles(), bundles)
}

func TestOpenAIConfig_Enabled(t *testing.T) {
	assert.False(t, OpenAIConfig{}.Enabled())
	assert.True(t, OpenAIConfig{APIKey: "sk"}.Enabled())
}
