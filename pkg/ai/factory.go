package ai

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnknownProvider indicates the configured provider name is not
// supported.
var ErrUnknownProvider = errors.New("unknown ai provider")

// ErrNoMockResponse indicates a MockGrader ran out of canned responses.
var ErrNoMockResponse = errors.New("no mock responses remaining")

// Config selects and configures a grading provider.
type Config struct {
	Provider        string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	Model           string
	MaxTokens       int
	Temperature     float32
	Timeout         time.Duration
	Logger          zerolog.Logger
}

// New constructs the Grader named by cfg.Provider.
func New(cfg Config) (Grader, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIGrader(OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
			Logger:      cfg.Logger,
		})
	case "anthropic":
		return NewAnthropicGrader(AnthropicConfig{
			APIKey:    cfg.AnthropicAPIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
			Logger:    cfg.Logger,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
