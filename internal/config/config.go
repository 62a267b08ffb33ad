package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"newsdash/internal/models"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env        Environment
	LogLevel   string
	ServerAddr string
	// LexiconPath points at an optional YAML file overriding the built-in lexicon.
	LexiconPath string
}

type FetchConfig struct {
	Timeout     time.Duration
	DialTimeout time.Duration
	SizeCap     int64
}

type LimitsConfig struct {
	BatchConcurrency int
	MaxUploadBytes   int64
	MaxWordsLimit    int
	DefaultMaxWords  int
}

type Config struct {
	App     AppConfig
	Fetch   FetchConfig
	Limits  LimitsConfig
	Lexicon *Lexicon
}

// Load reads the environment (and a .env file when present) and the lexicon.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv("APP_ENV", "development"))
	cfg := &Config{
		App: AppConfig{
			Env:         env,
			LogLevel:    getLogLevel(env),
			ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
			LexiconPath: getEnv("LEXICON_PATH", ""),
		},
		Fetch: FetchConfig{
			Timeout:     getEnvDuration("FETCH_TIMEOUT", 15*time.Second),
			DialTimeout: getEnvDuration("FETCH_DIAL_TIMEOUT", 5*time.Second),
			SizeCap:     int64(getEnvInt("FETCH_SIZE_CAP", 5*1024*1024)),
		},
		Limits: LimitsConfig{
			BatchConcurrency: getEnvInt("BATCH_CONCURRENCY", 10),
			MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 32<<20)),
			MaxWordsLimit:    getEnvInt("MAX_WORDS_LIMIT", 500),
			DefaultMaxWords:  getEnvInt("DEFAULT_MAX_WORDS", 100),
		},
	}

	lex, err := LoadLexicon(cfg.App.LexiconPath)
	if err != nil {
		return nil, err
	}
	cfg.Lexicon = lex

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Limits.MaxWordsLimit <= 0 {
		return fmt.Errorf("%w: MAX_WORDS_LIMIT must be positive", models.ErrInvalidConfiguration)
	}
	if c.Limits.DefaultMaxWords <= 0 || c.Limits.DefaultMaxWords > c.Limits.MaxWordsLimit {
		return fmt.Errorf("%w: DEFAULT_MAX_WORDS must be in [1, %d]", models.ErrInvalidConfiguration, c.Limits.MaxWordsLimit)
	}
	if c.Limits.BatchConcurrency <= 0 {
		return fmt.Errorf("%w: BATCH_CONCURRENCY must be positive", models.ErrInvalidConfiguration)
	}
	if c.Lexicon == nil {
		return fmt.Errorf("%w: lexicon missing", models.ErrInvalidConfiguration)
	}
	return c.Lexicon.Validate()
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))
	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("LOG_LEVEL", "info")
	}
	return getEnv("LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
