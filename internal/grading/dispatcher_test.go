package grading

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/pkg/ai"
)

func testEngine(provider ai.Grader) *Engine {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewEngine(provider, validate, zerolog.Nop(),
		WithSubjectiveGrader(NewSubjectiveGrader(provider, zerolog.Nop())))
}

func TestEngineRoutesMCQ(t *testing.T) {
	engine := testEngine(nil)

	result := engine.GradeOne(context.Background(),
		Response{QuestionID: "q1", Answer: Answer{Option: "c"}, MaxMarks: 4},
		Question{ID: "q1", Type: TypeMCQ, Correct: Answer{Option: "c"}},
		AssessmentConfig{})

	require.True(t, *result.IsCorrect)
	require.Equal(t, 4.0, result.MarksAwarded)
	require.Equal(t, 1.0, result.Confidence)
}

func TestEngineRoutesTrueFalseWithNegativeMarking(t *testing.T) {
	engine := testEngine(nil)

	result := engine.GradeOne(context.Background(),
		Response{QuestionID: "q1", Answer: Answer{Option: "false"}, MaxMarks: 4},
		Question{ID: "q1", Type: TypeTrueFalse, Correct: Answer{Option: "true"}},
		AssessmentConfig{NegativeMarking: NegativeMarking{Enabled: true, Percentage: 25}})

	require.Equal(t, -1.0, result.MarksAwarded)
}

func TestEngineRoutesFillInBlank(t *testing.T) {
	engine := testEngine(nil)

	result := engine.GradeOne(context.Background(),
		Response{QuestionID: "q1", Answer: Answer{Blanks: []string{"nucleus", "wrong"}}, MaxMarks: 6},
		Question{ID: "q1", Type: TypeFillInBlank, Correct: Answer{Blanks: []string{"nucleus", "ribosome"}}},
		AssessmentConfig{PartialMarking: true})

	require.Equal(t, 3.0, result.MarksAwarded)
	require.Len(t, result.Details, 2)
}

func TestEngineRoutesMathShortAnswerNumerically(t *testing.T) {
	engine := testEngine(nil)

	for _, subject := range []string{"Mathematics", "physics", "MATH"} {
		result := engine.GradeOne(context.Background(),
			Response{QuestionID: "q1", Answer: Answer{Text: "42"}, MaxMarks: 2},
			Question{ID: "q1", Type: TypeShortAnswer, Subject: subject, Correct: Answer{Text: "42"}},
			AssessmentConfig{})

		require.Equal(t, 0.95, result.Confidence, "subject %s", subject)
		require.True(t, *result.IsCorrect)
	}
}

func TestEngineRoutesMathematicalType(t *testing.T) {
	engine := testEngine(nil)

	result := engine.GradeOne(context.Background(),
		Response{QuestionID: "q1", Answer: Answer{Text: "3.14160"}, MaxMarks: 5},
		Question{ID: "q1", Type: TypeMathematical, Correct: Answer{Text: "3.14159"}},
		AssessmentConfig{})

	require.True(t, *result.IsCorrect)
}

func TestEngineRoutesNonMathShortAnswerToAI(t *testing.T) {
	mock := ai.NewMockGrader(ai.MockResponse{Output: ai.GradeOutput{Score: 0.8, Confidence: 0.85}})
	engine := testEngine(mock)

	result := engine.GradeOne(context.Background(),
		Response{QuestionID: "q1", Answer: Answer{Text: "an answer"}, MaxMarks: 10},
		Question{ID: "q1", Type: TypeShortAnswer, Subject: "History", Correct: Answer{Text: "a reference"}},
		AssessmentConfig{})

	require.Len(t, mock.Calls, 1)
	require.True(t, *result.IsCorrect)
	require.Equal(t, 8.0, result.MarksAwarded)
}

func TestEngineRoutesEssayToManualGrading(t *testing.T) {
	mock := ai.NewMockGrader(ai.MockResponse{Err: errors.New("must not be called")})
	engine := testEngine(mock)

	for _, questionType := range []QuestionType{TypeLongAnswer, TypeEssay} {
		result := engine.GradeOne(context.Background(),
			Response{QuestionID: "q1", Answer: Answer{Text: "a long essay"}, MaxMarks: 20},
			Question{ID: "q1", Type: questionType, Correct: Answer{Text: "reference"}},
			AssessmentConfig{})

		require.Nil(t, result.IsCorrect)
		require.True(t, result.NeedsManualGrading)
		require.Equal(t, 0.0, result.MarksAwarded)
		require.Equal(t, 0.0, result.Confidence)
	}
	require.Empty(t, mock.Calls)
}

func TestEngineUnknownQuestionType(t *testing.T) {
	engine := testEngine(nil)

	result := engine.GradeOne(context.Background(),
		Response{QuestionID: "q1", MaxMarks: 5},
		Question{ID: "q1", Type: QuestionType("matching")},
		AssessmentConfig{})

	require.False(t, *result.IsCorrect)
	require.Equal(t, 0.0, result.MarksAwarded)
	require.Equal(t, 0.0, result.Confidence)
	require.Equal(t, "Unknown question type", result.Explanation)
}

func TestEngineRejectsInvalidInput(t *testing.T) {
	engine := testEngine(nil)

	result := engine.GradeOne(context.Background(),
		Response{QuestionID: "q1", Answer: Answer{Option: "a"}, MaxMarks: -1},
		Question{ID: "q1", Type: TypeMCQ, Correct: Answer{Option: "a"}},
		AssessmentConfig{})

	require.False(t, *result.IsCorrect)
	require.Equal(t, 0.0, result.MarksAwarded)
	require.Equal(t, "Invalid grading input", result.Explanation)
}

func TestEngineDetectPlagiarism(t *testing.T) {
	engine := testEngine(nil)

	text := "the water cycle moves water between oceans atmosphere and land"
	report := engine.DetectPlagiarism(text, []CorpusEntry{{Source: "wiki", Text: text}})

	require.True(t, report.IsPlagiarized)
	require.InDelta(t, 1.0, report.PlagiarismScore, 1e-9)
}
