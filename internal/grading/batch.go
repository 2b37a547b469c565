package grading

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ItemStatus describes what happened to one batch item.
type ItemStatus string

const (
	// StatusGraded means the item was matched to its question and graded.
	StatusGraded ItemStatus = "graded"

	// StatusMissingQuestion means no question with the response's ID was
	// supplied. The item is reported rather than silently dropped so
	// upstream data problems stay visible.
	StatusMissingQuestion ItemStatus = "missing_question"
)

// ItemResult pairs one response with its grading outcome.
type ItemResult struct {
	QuestionID string     `json:"question_id"`
	Status     ItemStatus `json:"status"`
	Result     Result     `json:"result"`
}

// BatchConfig bounds the orchestrator's concurrency. SubjectiveConcurrency
// throttles only the items that may call the AI provider; deterministic
// grading is limited by Workers alone.
type BatchConfig struct {
	Workers               int
	SubjectiveConcurrency int
}

// Orchestrator grades an ordered collection of responses against their
// questions. Items are independent; results keep the order of the input
// responses.
type Orchestrator struct {
	engine *Engine
	cfg    BatchConfig
	logger zerolog.Logger
}

// NewOrchestrator constructs a batch orchestrator around an engine.
func NewOrchestrator(engine *Engine, cfg BatchConfig, logger zerolog.Logger) *Orchestrator {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.SubjectiveConcurrency <= 0 {
		cfg.SubjectiveConcurrency = 1
	}
	return &Orchestrator{
		engine: engine,
		cfg:    cfg,
		logger: logger.With().Str("component", "batch_orchestrator").Logger(),
	}
}

// GradeBatch grades every response against the question with the same ID.
// A response whose question is absent yields a missing-question entry; the
// batch itself never fails. Callers wanting to cancel a batch simply stop
// consuming and cancel ctx; items already dispatched run to completion.
func (o *Orchestrator) GradeBatch(ctx context.Context, responses []Response, questions []Question, cfg AssessmentConfig) []ItemResult {
	passID := uuid.NewString()
	logger := o.logger.With().Str("pass_id", passID).Logger()

	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	results := make([]ItemResult, len(responses))
	jobs := make(chan int)

	// AI provider rate limits are shared across workers, so subjective
	// items take a slot from this semaphore while everything else runs
	// unthrottled.
	aiSlots := make(chan struct{}, o.cfg.SubjectiveConcurrency)

	var wg sync.WaitGroup
	for w := 0; w < o.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				response := responses[i]
				question, found := byID[response.QuestionID]
				if !found {
					logger.Warn().Str("question_id", response.QuestionID).Msg("response skipped: question not found")
					results[i] = ItemResult{QuestionID: response.QuestionID, Status: StatusMissingQuestion}
					continue
				}

				if requiresAI(question) {
					aiSlots <- struct{}{}
					results[i] = ItemResult{
						QuestionID: response.QuestionID,
						Status:     StatusGraded,
						Result:     o.engine.GradeOne(ctx, response, question, cfg),
					}
					<-aiSlots
					continue
				}

				results[i] = ItemResult{
					QuestionID: response.QuestionID,
					Status:     StatusGraded,
					Result:     o.engine.GradeOne(ctx, response, question, cfg),
				}
			}
		}()
	}

	for i := range responses {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	logger.Info().Int("responses", len(responses)).Int("questions", len(questions)).Msg("batch grading complete")
	return results
}
