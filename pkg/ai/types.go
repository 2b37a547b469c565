package ai

import "context"

// GradeInput contains the artefacts needed to grade one subjective answer.
type GradeInput struct {
	QuestionText    string
	ReferenceAnswer string
	StudentAnswer   string
	MaxMarks        float64
}

// GradeOutput is the structured grade returned by an AI grading provider.
// Score is in [0, 1]; MarksAwarded is in marks, bounded by the question's
// max.
type GradeOutput struct {
	Score          float64  `json:"score"`
	MarksAwarded   float64  `json:"marksAwarded"`
	Confidence     float64  `json:"confidence"`
	Explanation    string   `json:"explanation"`
	KeyPoints      []string `json:"keyPoints,omitempty"`
	QualityScore   float64  `json:"qualityScore"`
	RelevanceScore float64  `json:"relevanceScore"`
}

// Grader describes an AI model capable of grading free-text answers. A call
// may fail outright (timeout, HTTP error, provider error); callers own the
// decision of what to do on failure. Implementations own their request
// timeout.
type Grader interface {
	GradeAnswer(ctx context.Context, input GradeInput) (GradeOutput, error)
}
