package grading

import "math"

// QuestionType enumerates the question kinds the engine can grade. The set is
// closed: the dispatcher switches exhaustively over these values and anything
// else is reported as an unknown type rather than probed dynamically.
type QuestionType string

const (
	TypeMCQ          QuestionType = "mcq"
	TypeTrueFalse    QuestionType = "true_false"
	TypeFillInBlank  QuestionType = "fill_in_blank"
	TypeShortAnswer  QuestionType = "short_answer"
	TypeLongAnswer   QuestionType = "long_answer"
	TypeEssay        QuestionType = "essay"
	TypeMathematical QuestionType = "mathematical"
)

// Answer carries a student or reference answer. Exactly one field group is
// meaningful for a given question type: Option for single-choice questions,
// Blanks for fill-in-the-blank, Text for everything else.
type Answer struct {
	Option string   `json:"option,omitempty"`
	Blanks []string `json:"blanks,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Question is the engine's read-only view of a question record. The engine
// never persists or mutates questions; they are supplied by the assessment
// workflow.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Subject string       `json:"subject"`
	Text    string       `json:"text"`
	Correct Answer       `json:"correct"`
}

// Response is a single student answer to be graded.
type Response struct {
	QuestionID string       `json:"question_id"`
	Type       QuestionType `json:"type"`
	Answer     Answer       `json:"answer"`
	MaxMarks   float64      `json:"max_marks" validate:"gte=0"`
}

// NegativeMarking configures the deduction applied to incorrect objective
// answers, as a percentage of the question's max marks.
type NegativeMarking struct {
	Enabled    bool    `json:"enabled"`
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
}

// AssessmentConfig is supplied per assessment and held constant for the
// duration of a grading pass.
type AssessmentConfig struct {
	NegativeMarking NegativeMarking `json:"negative_marking"`
	PartialMarking  bool            `json:"partial_marking"`
}

// BlankResult records the outcome for a single blank of a fill-in-the-blank
// question.
type BlankResult struct {
	Index    int    `json:"index"`
	Given    string `json:"given"`
	Expected string `json:"expected"`
	Matched  bool   `json:"matched"`
}

// AIAnalysis carries the extra signals returned by a successful AI grading
// call.
type AIAnalysis struct {
	KeyPoints      []string `json:"key_points,omitempty"`
	QualityScore   float64  `json:"quality_score"`
	RelevanceScore float64  `json:"relevance_score"`
}

// Result is the engine's sole output shape. Every grader returns it,
// regardless of the internal path taken. IsCorrect is nil only when
// NeedsManualGrading is true. MarksAwarded never exceeds MaxMarks in
// magnitude and Confidence is always within [0, 1].
type Result struct {
	IsCorrect          *bool         `json:"is_correct"`
	MarksAwarded       float64       `json:"marks_awarded"`
	Confidence         float64       `json:"confidence"`
	Explanation        string        `json:"explanation"`
	Details            []BlankResult `json:"details,omitempty"`
	NeedsManualGrading bool          `json:"needs_manual_grading,omitempty"`
	AIAnalysis         *AIAnalysis   `json:"ai_analysis,omitempty"`
}

// PlagiarismMatch is a single above-threshold similarity hit against one
// reference source.
type PlagiarismMatch struct {
	Source     string   `json:"source"`
	Similarity float64  `json:"similarity"`
	Matched    []string `json:"matched_text,omitempty"`
}

// PlagiarismReport summarises a plagiarism check against a reference corpus.
type PlagiarismReport struct {
	IsPlagiarized   bool              `json:"is_plagiarized"`
	PlagiarismScore float64           `json:"plagiarism_score"`
	Matches         []PlagiarismMatch `json:"matches"`
}

func boolPtr(v bool) *bool { return &v }

// round2 rounds marks to two decimal places before they leave the engine.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampMarks bounds awarded marks to [-max, max].
func clampMarks(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
