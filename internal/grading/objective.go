package grading

import (
	"fmt"
	"strings"
)

// ObjectiveGrader scores single-best-answer questions (MCQ, True/False) by
// exact option equality. It is a pure value; safe for concurrent use.
type ObjectiveGrader struct{}

// Grade compares the selected option against the correct one. An incorrect
// answer is deducted marks when negative marking is enabled, never more than
// the question is worth.
func (ObjectiveGrader) Grade(selected, correct string, maxMarks float64, neg NegativeMarking) Result {
	if strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(correct)) {
		return Result{
			IsCorrect:    boolPtr(true),
			MarksAwarded: maxMarks,
			Confidence:   1.0,
			Explanation:  "Correct answer",
		}
	}

	var marks float64
	if neg.Enabled {
		marks = clampMarks(-(maxMarks * neg.Percentage / 100), maxMarks)
	}

	return Result{
		IsCorrect:    boolPtr(false),
		MarksAwarded: round2(marks),
		Confidence:   1.0,
		Explanation:  fmt.Sprintf("Incorrect. The correct answer is: %s", correct),
	}
}
