package grading

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/internal/observability"
	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/pkg/ai"
)

// Engine routes one response to the correct grader by question type and
// subject and normalizes every grader's output into a single Result shape.
type Engine struct {
	objective  ObjectiveGrader
	partial    PartialCreditGrader
	numeric    NumericGrader
	subjective *SubjectiveGrader
	detector   Detector
	validator  *validator.Validate
	logger     zerolog.Logger
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithNumericTolerance overrides the absolute tolerance for numeric
// answers.
func WithNumericTolerance(tolerance float64) EngineOption {
	return func(e *Engine) { e.numeric.Tolerance = tolerance }
}

// WithPlagiarismThreshold overrides the similarity threshold for plagiarism
// detection.
func WithPlagiarismThreshold(threshold float64) EngineOption {
	return func(e *Engine) { e.detector.Threshold = threshold }
}

// WithSubjectiveGrader replaces the default subjective grader, allowing a
// cache or plagiarism corpus to be attached.
func WithSubjectiveGrader(g *SubjectiveGrader) EngineOption {
	return func(e *Engine) { e.subjective = g }
}

// NewEngine constructs a grading engine. Provider may be nil; subjective
// grading then relies on its deterministic fallback.
func NewEngine(provider ai.Grader, validate *validator.Validate, logger zerolog.Logger, opts ...EngineOption) *Engine {
	engineLogger := logger.With().Str("component", "grading_engine").Logger()
	e := &Engine{
		subjective: NewSubjectiveGrader(provider, logger),
		validator:  validate,
		logger:     engineLogger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// numericSubjects lists the subjects whose short answers are graded
// numerically instead of by the AI path.
var numericSubjects = map[string]struct{}{
	"mathematics": {},
	"math":        {},
	"physics":     {},
}

func isNumericSubject(subject string) bool {
	_, ok := numericSubjects[strings.ToLower(strings.TrimSpace(subject))]
	return ok
}

// requiresAI reports whether grading this question may call the external AI
// provider. Used by the batch orchestrator to throttle provider traffic.
func requiresAI(question Question) bool {
	return question.Type == TypeShortAnswer && !isNumericSubject(question.Subject)
}

// GradeOne grades a single response against its question. It always returns
// a Result and never an error; every failure mode is folded into the result
// per the grading error taxonomy.
func (e *Engine) GradeOne(ctx context.Context, response Response, question Question, cfg AssessmentConfig) Result {
	tracer := otel.Tracer("github.com/DhimanTarafdar/gyanguru-education-platform-sub002/internal/grading")
	ctx, span := tracer.Start(ctx, "grading.grade_one")
	span.SetAttributes(
		attribute.String("grading.question_id", question.ID),
		attribute.String("grading.question_type", string(question.Type)),
	)
	defer span.End()

	start := time.Now()
	result := e.dispatch(ctx, response, question, cfg)
	observability.GradingLatency().WithLabelValues(string(question.Type)).Observe(time.Since(start).Seconds())
	observability.GradingTotal().WithLabelValues(string(question.Type), outcomeLabel(result)).Inc()

	return result
}

func (e *Engine) dispatch(ctx context.Context, response Response, question Question, cfg AssessmentConfig) Result {
	if e.validator != nil {
		if err := e.validator.Struct(response); err != nil {
			e.logger.Warn().Err(err).Str("question_id", question.ID).Msg("invalid grading input")
			return Result{
				IsCorrect:    boolPtr(false),
				MarksAwarded: 0,
				Confidence:   0,
				Explanation:  "Invalid grading input",
			}
		}
	}

	switch question.Type {
	case TypeMCQ, TypeTrueFalse:
		return e.objective.Grade(response.Answer.Option, question.Correct.Option, response.MaxMarks, cfg.NegativeMarking)

	case TypeFillInBlank:
		return e.partial.Grade(response.Answer.Blanks, question.Correct.Blanks, response.MaxMarks, cfg.PartialMarking)

	case TypeMathematical:
		return e.numeric.Grade(response.Answer.Text, question.Correct.Text, response.MaxMarks)

	case TypeShortAnswer:
		if isNumericSubject(question.Subject) {
			return e.numeric.Grade(response.Answer.Text, question.Correct.Text, response.MaxMarks)
		}
		return e.subjective.Grade(ctx, question, response)

	case TypeLongAnswer, TypeEssay:
		return e.subjective.ManualGrade()

	default:
		e.logger.Warn().Str("question_id", question.ID).Str("type", string(question.Type)).Msg("unknown question type")
		return Result{
			IsCorrect:    boolPtr(false),
			MarksAwarded: 0,
			Confidence:   0,
			Explanation:  "Unknown question type",
		}
	}
}

// DetectPlagiarism checks a text answer against a reference corpus using the
// engine's configured threshold.
func (e *Engine) DetectPlagiarism(text string, corpus []CorpusEntry) PlagiarismReport {
	return e.detector.Detect(text, corpus)
}

func outcomeLabel(result Result) string {
	switch {
	case result.NeedsManualGrading:
		return "manual"
	case result.IsCorrect != nil && *result.IsCorrect:
		return "correct"
	default:
		return "incorrect"
	}
}
