package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the grading engine.
type Config struct {
	AppName               string
	AppEnv                string
	AIProvider            string
	AIModel               string
	AIMaxTokens           int
	AITemperature         float32
	AITimeout             time.Duration
	OpenAIAPIKey          string
	AnthropicAPIKey       string
	RedisURL              string
	GradeCacheTTL         time.Duration
	BatchWorkers          int
	SubjectiveConcurrency int
	NumericTolerance      float64
	PlagiarismThreshold   float64
}

// Load reads configuration values from environment variables and optional
// .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GYANGURU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "GyanGuru Grading Engine")
	v.SetDefault("app.env", "development")
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.max_tokens", 512)
	v.SetDefault("ai.temperature", 0.0)
	v.SetDefault("ai.timeout_ms", 30000)
	v.SetDefault("grade_cache_ttl", "1h")
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.subjective_concurrency", 1)
	v.SetDefault("numeric_tolerance", 0.001)
	v.SetDefault("plagiarism_threshold", 0.8)

	ttlString := v.GetString("grade_cache_ttl")
	if ttlString == "" {
		ttlString = "1h"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid grade cache ttl: %w", err)
	}

	timeoutMs := v.GetInt("ai.timeout_ms")
	if timeoutMs <= 0 {
		timeoutMs = 30000
	}

	cfg := Config{
		AppName:               v.GetString("app.name"),
		AppEnv:                v.GetString("app.env"),
		AIProvider:            strings.ToLower(v.GetString("ai.provider")),
		AIModel:               v.GetString("ai.model"),
		AIMaxTokens:           v.GetInt("ai.max_tokens"),
		AITemperature:         float32(v.GetFloat64("ai.temperature")),
		AITimeout:             time.Duration(timeoutMs) * time.Millisecond,
		OpenAIAPIKey:          v.GetString("openai_api_key"),
		AnthropicAPIKey:       v.GetString("anthropic_api_key"),
		RedisURL:              v.GetString("redis.url"),
		GradeCacheTTL:         ttl,
		BatchWorkers:          v.GetInt("batch.workers"),
		SubjectiveConcurrency: v.GetInt("batch.subjective_concurrency"),
		NumericTolerance:      v.GetFloat64("numeric_tolerance"),
		PlagiarismThreshold:   v.GetFloat64("plagiarism_threshold"),
	}

	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = 4
	}

	if cfg.SubjectiveConcurrency <= 0 {
		cfg.SubjectiveConcurrency = 1
	}

	if cfg.NumericTolerance <= 0 {
		cfg.NumericTolerance = 0.001
	}

	if cfg.PlagiarismThreshold <= 0 || cfg.PlagiarismThreshold > 1 {
		cfg.PlagiarismThreshold = 0.8
	}

	return cfg, nil
}
