package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/game"
	"github.com/at-ishikawa/wordloop/internal/practice"
)

type Config struct {
	Learner      LearnerConfig      `mapstructure:"learner"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     database.Config    `mapstructure:"database"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Engine       practice.Config    `mapstructure:"engine"`
	Games        GamesConfig        `mapstructure:"games"`
	Templates    TemplatesConfig    `mapstructure:"templates"`
	Outputs      OutputsConfig      `mapstructure:"outputs"`
}

// LearnerConfig holds the learner the CLI acts for.
type LearnerConfig struct {
	ID string `mapstructure:"id" validate:"required"`
}

type ServerConfig struct {
	Port                   int             `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                   CORSConfig      `mapstructure:"cors"`
	RateLimit              RateLimitConfig `mapstructure:"rate_limit"`
	ShutdownTimeoutSeconds int             `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig is a token bucket per client address. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

type OpenAIConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Enabled reports whether question augmentation can be used.
func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

type DictionariesConfig struct {
	RapidAPI RapidAPIConfig `mapstructure:"rapidapi"`
}

type RapidAPIConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host"`
	Key            string `mapstructure:"key"`
}

type GamesConfig struct {
	Quiz     game.Bundle `mapstructure:"quiz"`
	Matching game.Bundle `mapstructure:"matching"`
	// SessionTTLMinutes is how long the server keeps a started or finished game session.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" validate:"gte=0"`
}

// Bundles returns the scoring constants keyed by game type.
func (c GamesConfig) Bundles() map[game.GameType]game.Bundle {
	return map[game.GameType]game.Bundle{
		game.GameTypeQuiz:     c.Quiz,
		game.GameTypeMatching: c.Matching,
	}
}

type TemplatesConfig struct {
	// ReportTemplate is optional; the embedded template is used when empty.
	ReportTemplate string `mapstructure:"report_template" validate:"omitempty,readable_file"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
	ExportDirectory string `mapstructure:"export_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordloop")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load reads, defaults and validates the configuration.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	setDefaults(v)

	// Secrets come from the environment so they stay out of config files
	for key, env := range map[string]string{
		"dictionaries.rapidapi.host": "RAPID_API_HOST",
		"dictionaries.rapidapi.key":  "RAPID_API_KEY",
		"openai.api_key":             "OPENAI_API_KEY",
		"openai.model":               "OPENAI_MODEL",
		"database.password":          "DB_PASSWORD",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("learner.id", "default")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.rate_limit.requests_per_second", 10)
	v.SetDefault("server.rate_limit.burst", 20)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.driver", database.DriverSQLite)
	v.SetDefault("database.path", "wordloop.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.database", "wordloop")
	v.SetDefault("database.username", "wordloop")

	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_retry_attempts", 2)
	v.SetDefault("openai.timeout_seconds", 30)

	v.SetDefault("dictionaries.rapidapi.cache_directory", filepath.Join("dictionaries", "rapidapi"))

	engine := practice.DefaultConfig()
	v.SetDefault("engine.target_count", engine.TargetCount)
	v.SetDefault("engine.accuracy_window", engine.AccuracyWindow)
	v.SetDefault("engine.max_distractors", engine.MaxDistractors)
	v.SetDefault("engine.scheduler.first_interval", engine.Scheduler.FirstInterval)
	v.SetDefault("engine.scheduler.second_interval", engine.Scheduler.SecondInterval)
	v.SetDefault("engine.scheduler.interval_modifier", engine.Scheduler.IntervalModifier)
	v.SetDefault("engine.scheduler.max_interval", engine.Scheduler.MaxInterval)
	v.SetDefault("engine.scheduler.min_ease_factor", engine.Scheduler.MinEaseFactor)
	v.SetDefault("engine.scheduler.max_ease_factor", engine.Scheduler.MaxEaseFactor)
	v.SetDefault("engine.scheduler.default_ease_factor", engine.Scheduler.DefaultEaseFactor)
	v.SetDefault("engine.scheduler.pass_threshold", engine.Scheduler.PassThreshold)
	v.SetDefault("engine.scheduler.failure_penalty", engine.Scheduler.FailurePenalty)
	v.SetDefault("engine.rating.target_time_seconds", engine.Rating.TargetTimeSeconds)
	v.SetDefault("engine.selector.basic_accuracy", engine.Selector.BasicAccuracy)
	v.SetDefault("engine.selector.reinforce_accuracy", engine.Selector.ReinforceAccuracy)

	for name, bundle := range game.DefaultBundles() {
		prefix := "games." + string(name) + "."
		v.SetDefault(prefix+"base_points_per_correct", bundle.BasePointsPerCorrect)
		v.SetDefault(prefix+"speed_bonus_threshold_seconds", bundle.SpeedBonusThresholdSeconds)
		v.SetDefault(prefix+"speed_basis", string(bundle.SpeedBasis))
		v.SetDefault(prefix+"speed_bonus_points", bundle.SpeedBonusPoints)
		v.SetDefault(prefix+"streak_bonus_multiplier", bundle.StreakBonusMultiplier)
		v.SetDefault(prefix+"perfect_score_bonus", bundle.PerfectScoreBonus)
		v.SetDefault(prefix+"accuracy_bonus_threshold", bundle.AccuracyBonusThreshold)
		v.SetDefault(prefix+"accuracy_bonus_points", bundle.AccuracyBonusPoints)
	}

	v.SetDefault("games.session_ttl_minutes", int(game.DefaultSessionTTL/time.Minute))

	v.SetDefault("templates.report_template", "")
	v.SetDefault("outputs.report_directory", filepath.Join("outputs", "reports"))
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "exports"))
}
