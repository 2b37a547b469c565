package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
)

// AnthropicConfig defines configuration options for the Anthropic grader.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	Logger    zerolog.Logger
}

// AnthropicGrader implements Grader against the Anthropic Messages API.
type AnthropicGrader struct {
	client *anthropic.Client
	cfg    AnthropicConfig
	logger zerolog.Logger
}

// NewAnthropicGrader builds a new grader using the provided configuration.
func NewAnthropicGrader(cfg AnthropicConfig) (*AnthropicGrader, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "claude-haiku-4-5-20251001"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 512
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	return &AnthropicGrader{
		client: &client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// GradeAnswer sends the grading request to Anthropic and parses the
// response.
func (g *AnthropicGrader) GradeAnswer(parent context.Context, input GradeInput) (GradeOutput, error) {
	ctx, cancel := context.WithTimeout(parent, g.cfg.Timeout)
	defer cancel()

	start := time.Now()
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.cfg.Model),
		MaxTokens: int64(g.cfg.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: graderSystemPrompt()},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(buildGradingPrompt(input)),
				},
			},
		},
	})
	duration := time.Since(start)
	aiDuration.WithLabelValues(g.cfg.Model).Observe(duration.Seconds())
	if err != nil {
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		return GradeOutput{}, fmt.Errorf("anthropic grade: %w", err)
	}

	content := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			content = block.Text
			break
		}
	}
	if strings.TrimSpace(content) == "" {
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		return GradeOutput{}, fmt.Errorf("no text content in anthropic response")
	}

	result, ok := ParseGradeOutput(content)
	if !ok {
		g.logger.Warn().Str("model", g.cfg.Model).Msg("anthropic grade payload unparseable, using default")
	}

	return result, nil
}
