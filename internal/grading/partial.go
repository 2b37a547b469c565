package grading

import "fmt"

// partialConfidence reflects the uncertainty fuzzy blank matching introduces.
const partialConfidence = 0.9

// PartialCreditGrader scores fill-in-the-blank questions blank by blank
// using fuzzy answer comparison.
type PartialCreditGrader struct{}

// Grade compares each student blank against the accepted value at the same
// index. With partial marking the award is proportional to the number of
// correct blanks; otherwise it is all or nothing. Full correctness always
// requires every blank to match, regardless of policy.
func (PartialCreditGrader) Grade(studentBlanks, correctBlanks []string, maxMarks float64, partialMarking bool) Result {
	totalBlanks := len(correctBlanks)
	if totalBlanks == 0 {
		return Result{
			IsCorrect:    boolPtr(false),
			MarksAwarded: 0,
			Confidence:   partialConfidence,
			Explanation:  "No accepted answers provided for this question",
		}
	}

	details := make([]BlankResult, 0, totalBlanks)
	correctCount := 0
	for i, expected := range correctBlanks {
		given := ""
		if i < len(studentBlanks) {
			given = studentBlanks[i]
		}
		matched := given != "" && CompareAnswers(given, expected)
		if matched {
			correctCount++
		}
		details = append(details, BlankResult{
			Index:    i,
			Given:    given,
			Expected: expected,
			Matched:  matched,
		})
	}

	allCorrect := correctCount == totalBlanks

	var marks float64
	if partialMarking {
		marks = round2(float64(correctCount) / float64(totalBlanks) * maxMarks)
	} else if allCorrect {
		marks = maxMarks
	}

	return Result{
		IsCorrect:    boolPtr(allCorrect),
		MarksAwarded: marks,
		Confidence:   partialConfidence,
		Explanation:  fmt.Sprintf("%d of %d blanks correct", correctCount, totalBlanks),
		Details:      details,
	}
}
