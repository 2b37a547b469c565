package grading

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/internal/cache"
	"github.com/DhimanTarafdar/gyanguru-education-platform-sub002/pkg/ai"
)

func shortAnswerQuestion() Question {
	return Question{
		ID:      "q1",
		Type:    TypeShortAnswer,
		Subject: "Biology",
		Text:    "Explain photosynthesis.",
		Correct: Answer{Text: "Plants convert sunlight water and carbon dioxide into glucose and oxygen"},
	}
}

func TestSubjectiveGraderAISuccess(t *testing.T) {
	mock := ai.NewMockGrader(ai.MockResponse{Output: ai.GradeOutput{
		Score:          0.85,
		MarksAwarded:   8.5,
		Confidence:     0.9,
		Explanation:    "Covers the key points",
		KeyPoints:      []string{"sunlight", "glucose"},
		QualityScore:   0.8,
		RelevanceScore: 0.9,
	}})
	grader := NewSubjectiveGrader(mock, zerolog.Nop())

	result := grader.Grade(context.Background(), shortAnswerQuestion(), Response{
		QuestionID: "q1",
		Type:       TypeShortAnswer,
		Answer:     Answer{Text: "Plants use sunlight to make glucose"},
		MaxMarks:   10,
	})

	require.NotNil(t, result.IsCorrect)
	require.True(t, *result.IsCorrect)
	require.Equal(t, 8.5, result.MarksAwarded)
	require.Equal(t, 0.9, result.Confidence)
	require.NotNil(t, result.AIAnalysis)
	require.Equal(t, []string{"sunlight", "glucose"}, result.AIAnalysis.KeyPoints)
	require.Len(t, mock.Calls, 1)
	require.Equal(t, 10.0, mock.Calls[0].MaxMarks)
}

func TestSubjectiveGraderScoreBelowThresholdIncorrect(t *testing.T) {
	mock := ai.NewMockGrader(ai.MockResponse{Output: ai.GradeOutput{Score: 0.69, Confidence: 0.9}})
	grader := NewSubjectiveGrader(mock, zerolog.Nop())

	result := grader.Grade(context.Background(), shortAnswerQuestion(), Response{
		QuestionID: "q1",
		Answer:     Answer{Text: "something"},
		MaxMarks:   10,
	})

	require.False(t, *result.IsCorrect)
	require.Equal(t, 6.9, result.MarksAwarded)
}

func TestSubjectiveGraderFallbackOnProviderError(t *testing.T) {
	mock := ai.NewMockGrader(ai.MockResponse{Err: errors.New("provider timeout")})
	grader := NewSubjectiveGrader(mock, zerolog.Nop())

	question := shortAnswerQuestion()
	result := grader.Grade(context.Background(), question, Response{
		QuestionID: "q1",
		Answer:     Answer{Text: question.Correct.Text},
		MaxMarks:   10,
	})

	require.Equal(t, 0.6, result.Confidence)
	require.NotNil(t, result.IsCorrect)
	require.True(t, *result.IsCorrect)
	require.Equal(t, 10.0, result.MarksAwarded)
}

func TestSubjectiveGraderFallbackDissimilarAnswer(t *testing.T) {
	mock := ai.NewMockGrader(ai.MockResponse{Err: errors.New("rate limited")})
	grader := NewSubjectiveGrader(mock, zerolog.Nop())

	result := grader.Grade(context.Background(), shortAnswerQuestion(), Response{
		QuestionID: "q1",
		Answer:     Answer{Text: "unrelated words entirely"},
		MaxMarks:   10,
	})

	require.Equal(t, 0.6, result.Confidence)
	require.False(t, *result.IsCorrect)
	require.Equal(t, 0.0, result.MarksAwarded)
}

func TestSubjectiveGraderNilProviderUsesFallback(t *testing.T) {
	grader := NewSubjectiveGrader(nil, zerolog.Nop())

	question := shortAnswerQuestion()
	result := grader.Grade(context.Background(), question, Response{
		QuestionID: "q1",
		Answer:     Answer{Text: question.Correct.Text},
		MaxMarks:   5,
	})

	require.Equal(t, 0.6, result.Confidence)
	require.True(t, *result.IsCorrect)
}

func TestSubjectiveGraderManualGrade(t *testing.T) {
	grader := NewSubjectiveGrader(ai.NewMockGrader(), zerolog.Nop())

	result := grader.ManualGrade()

	require.Nil(t, result.IsCorrect)
	require.Equal(t, 0.0, result.MarksAwarded)
	require.Equal(t, 0.0, result.Confidence)
	require.True(t, result.NeedsManualGrading)
}

func TestSubjectiveGraderCachesResults(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer redisClient.Close()

	mock := ai.NewMockGrader(ai.MockResponse{Output: ai.GradeOutput{Score: 0.9, Confidence: 0.9}})
	gradeCache := cache.NewGradeCache(redisClient, time.Minute, zerolog.Nop())
	grader := NewSubjectiveGrader(mock, zerolog.Nop(), WithGradeCache(gradeCache))

	question := shortAnswerQuestion()
	response := Response{QuestionID: "q1", Answer: Answer{Text: "Plants use sunlight"}, MaxMarks: 10}

	first := grader.Grade(context.Background(), question, response)
	second := grader.Grade(context.Background(), question, response)

	require.Equal(t, first, second)
	require.Len(t, mock.Calls, 1)
}

func TestSubjectiveGraderFlagsPlagiarism(t *testing.T) {
	mock := ai.NewMockGrader(ai.MockResponse{Output: ai.GradeOutput{Score: 0.9, Confidence: 0.9}})
	corpus := []CorpusEntry{{Source: "model-answer", Text: "Plants use sunlight to make glucose"}}
	grader := NewSubjectiveGrader(mock, zerolog.Nop(), WithPlagiarismCorpus(corpus))

	result := grader.Grade(context.Background(), shortAnswerQuestion(), Response{
		QuestionID: "q1",
		Answer:     Answer{Text: "Plants use sunlight to make glucose"},
		MaxMarks:   10,
	})

	require.True(t, result.NeedsManualGrading)
	require.Contains(t, result.Explanation, "plagiarism")
	require.NotNil(t, result.IsCorrect)
}
