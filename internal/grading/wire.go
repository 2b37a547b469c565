package grading

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/internal/cache"
	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/internal/config"
	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/pkg/ai"
)

// NewFromConfig assembles an Engine and Orchestrator from application
// configuration: the configured AI provider, an optional Redis-backed grade
// cache, and the batch concurrency bounds.
func NewFromConfig(cfg config.Config, logger zerolog.Logger) (*Engine, *Orchestrator, error) {
	var provider ai.Grader
	if cfg.OpenAIAPIKey != "" || cfg.AnthropicAPIKey != "" {
		var err error
		provider, err = ai.New(ai.Config{
			Provider:        cfg.AIProvider,
			OpenAIAPIKey:    cfg.OpenAIAPIKey,
			AnthropicAPIKey: cfg.AnthropicAPIKey,
			Model:           cfg.AIModel,
			MaxTokens:       cfg.AIMaxTokens,
			Temperature:     cfg.AITemperature,
			Timeout:         cfg.AITimeout,
			Logger:          logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("build ai provider: %w", err)
		}
	} else {
		logger.Warn().Msg("no ai api key configured, subjective grading uses similarity fallback")
	}

	subjectiveOpts := []SubjectiveOption{}
	if cfg.RedisURL != "" {
		client, err := cache.ConnectRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		subjectiveOpts = append(subjectiveOpts, WithGradeCache(cache.NewGradeCache(client, cfg.GradeCacheTTL, logger)))
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	engine := NewEngine(provider, validate, logger,
		WithNumericTolerance(cfg.NumericTolerance),
		WithPlagiarismThreshold(cfg.PlagiarismThreshold),
		WithSubjectiveGrader(NewSubjectiveGrader(provider, logger, subjectiveOpts...)),
	)

	orchestrator := NewOrchestrator(engine, BatchConfig{
		Workers:               cfg.BatchWorkers,
		SubjectiveConcurrency: cfg.SubjectiveConcurrency,
	}, logger)

	return engine, orchestrator, nil
}
