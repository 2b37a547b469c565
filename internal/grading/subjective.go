package grading

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/internal/cache"
	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/internal/observability"
	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/pkg/ai"
)

const (
	// aiCorrectScore is the provider score at or above which an answer
	// counts as correct.
	aiCorrectScore = 0.7

	// fallbackThreshold is the cosine similarity above which the
	// deterministic fallback counts an answer as correct.
	fallbackThreshold = 0.7

	fallbackConfidence = 0.6
)

// SubjectiveGrader grades free-text short answers through an external AI
// provider, with a deterministic similarity fallback when the provider is
// unavailable. It is the only grader that may block on a network call; the
// provider owns the request timeout.
type SubjectiveGrader struct {
	provider ai.Grader
	cache    *cache.GradeCache
	detector Detector
	corpus   []CorpusEntry
	logger   zerolog.Logger
}

// SubjectiveOption customises a SubjectiveGrader.
type SubjectiveOption func(*SubjectiveGrader)

// WithGradeCache enables result caching for subjective grades.
func WithGradeCache(c *cache.GradeCache) SubjectiveOption {
	return func(g *SubjectiveGrader) { g.cache = c }
}

// WithPlagiarismCorpus enables a plagiarism check of each graded answer
// against the given reference corpus.
func WithPlagiarismCorpus(corpus []CorpusEntry) SubjectiveOption {
	return func(g *SubjectiveGrader) { g.corpus = corpus }
}

// NewSubjectiveGrader constructs a subjective grader. Provider may be nil,
// in which case every grade takes the deterministic fallback path.
func NewSubjectiveGrader(provider ai.Grader, logger zerolog.Logger, opts ...SubjectiveOption) *SubjectiveGrader {
	g := &SubjectiveGrader{
		provider: provider,
		detector: Detector{},
		logger:   logger.With().Str("component", "subjective_grader").Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ManualGrade is the short-circuit for long-answer and essay questions:
// they are never auto-graded, independent of AI availability.
func (g *SubjectiveGrader) ManualGrade() Result {
	observability.ManualReview().Inc()
	return Result{
		IsCorrect:          nil,
		MarksAwarded:       0,
		Confidence:         0,
		Explanation:        "Long answers require manual grading",
		NeedsManualGrading: true,
	}
}

// Grade scores a free-text answer against the question's reference answer.
// It never returns an error: provider failure degrades to a similarity
// grade, malformed provider output degrades to a low-confidence default.
func (g *SubjectiveGrader) Grade(ctx context.Context, question Question, response Response) Result {
	key := cache.Key(question.ID, question.Correct.Text, response.Answer.Text, fmt.Sprintf("%g", response.MaxMarks))

	var cached Result
	if g.cache.Get(ctx, key, &cached) {
		return cached
	}

	var result Result
	if g.provider == nil {
		result = g.fallbackGrade(question, response)
	} else if output, err := g.provider.GradeAnswer(ctx, ai.GradeInput{
		QuestionText:    question.Text,
		ReferenceAnswer: question.Correct.Text,
		StudentAnswer:   response.Answer.Text,
		MaxMarks:        response.MaxMarks,
	}); err != nil {
		g.logger.Warn().Err(err).Str("question_id", question.ID).Msg("ai grading failed, falling back to similarity")
		observability.AIFallbacks().Inc()
		result = g.fallbackGrade(question, response)
	} else {
		result = resultFromAI(output, response.MaxMarks)
	}

	g.applyPlagiarismCheck(&result, response.Answer.Text)
	g.cache.Set(ctx, key, result)
	return result
}

// fallbackGrade is the deterministic path: cosine similarity between
// normalized student and reference text, scaled by max marks.
func (g *SubjectiveGrader) fallbackGrade(question Question, response Response) Result {
	similarity := CosineSimilarity(response.Answer.Text, question.Correct.Text)
	return Result{
		IsCorrect:    boolPtr(similarity > fallbackThreshold),
		MarksAwarded: round2(similarity * response.MaxMarks),
		Confidence:   fallbackConfidence,
		Explanation:  fmt.Sprintf("Graded by text similarity (%.0f%% match with reference answer)", similarity*100),
	}
}

func resultFromAI(output ai.GradeOutput, maxMarks float64) Result {
	marks := output.MarksAwarded
	if marks == 0 && output.Score > 0 {
		marks = output.Score * maxMarks
	}
	marks = round2(clampMarks(marks, maxMarks))
	if marks < 0 {
		marks = 0
	}

	explanation := output.Explanation
	if explanation == "" {
		explanation = fmt.Sprintf("AI graded the answer at %.0f%%", output.Score*100)
	}

	return Result{
		IsCorrect:    boolPtr(output.Score >= aiCorrectScore),
		MarksAwarded: marks,
		Confidence:   output.Confidence,
		Explanation:  explanation,
		AIAnalysis: &AIAnalysis{
			KeyPoints:      output.KeyPoints,
			QualityScore:   output.QualityScore,
			RelevanceScore: output.RelevanceScore,
		},
	}
}

// applyPlagiarismCheck flags the result for review when the answer is too
// close to the configured reference corpus. It never changes the awarded
// marks; that call is left to a human.
func (g *SubjectiveGrader) applyPlagiarismCheck(result *Result, text string) {
	if len(g.corpus) == 0 {
		return
	}

	report := g.detector.Detect(text, g.corpus)
	if !report.IsPlagiarized {
		return
	}

	g.logger.Warn().Float64("score", report.PlagiarismScore).Msg("possible plagiarism detected")
	observability.ManualReview().Inc()
	result.NeedsManualGrading = true
	result.Explanation = fmt.Sprintf("%s. Possible plagiarism detected (%.0f%% similarity)", result.Explanation, report.PlagiarismScore*100)
}
