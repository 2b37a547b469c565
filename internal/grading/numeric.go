package grading

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTolerance is the absolute tolerance applied to numeric answers when
// the caller does not supply one.
const DefaultTolerance = 0.001

const (
	numericConfidence    = 0.95
	expressionConfidence = 0.8
)

// RE2 has no backreferences, so runs of the same repeated operator are
// matched with one alternation branch per operator instead of `([+\-*/^=])\1+`.
var operatorRunPattern = regexp.MustCompile(`(\+)\++|(-)-+|(\*)\*+|(/)/+|(\^)\^+|(=)=+`)

// NumericGrader scores mathematical short answers: numeric values within an
// absolute tolerance, and otherwise expressions by normalized string
// equality. The expression branch is deliberately literal; it performs no
// symbolic evaluation, so algebraically equal but differently written
// expressions do not match.
type NumericGrader struct {
	Tolerance float64
}

// Grade compares the student answer against the correct one. Parse problems
// on the student side produce a low-stakes incorrect result; nothing escapes
// to the caller.
func (g NumericGrader) Grade(student, correct string, maxMarks float64) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				IsCorrect:    boolPtr(false),
				MarksAwarded: 0,
				Confidence:   0.1,
				Explanation:  "Error in mathematical evaluation",
			}
		}
	}()

	tolerance := g.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	correctVal, err := strconv.ParseFloat(strings.TrimSpace(correct), 64)
	if err == nil {
		studentVal, err := strconv.ParseFloat(strings.TrimSpace(student), 64)
		if err != nil {
			return Result{
				IsCorrect:    boolPtr(false),
				MarksAwarded: 0,
				Confidence:   numericConfidence,
				Explanation:  "Invalid numerical answer",
			}
		}

		if math.Abs(studentVal-correctVal) <= tolerance {
			return Result{
				IsCorrect:    boolPtr(true),
				MarksAwarded: maxMarks,
				Confidence:   numericConfidence,
				Explanation:  "Correct numerical answer",
			}
		}
		return Result{
			IsCorrect:    boolPtr(false),
			MarksAwarded: 0,
			Confidence:   numericConfidence,
			Explanation:  fmt.Sprintf("Incorrect. Expected %s within tolerance %g", correct, tolerance),
		}
	}

	if normalizeExpression(student) == normalizeExpression(correct) {
		return Result{
			IsCorrect:    boolPtr(true),
			MarksAwarded: maxMarks,
			Confidence:   expressionConfidence,
			Explanation:  "Expression matches the expected answer",
		}
	}

	return Result{
		IsCorrect:    boolPtr(false),
		MarksAwarded: 0,
		Confidence:   expressionConfidence,
		Explanation:  fmt.Sprintf("Expression does not match the expected answer: %s", correct),
	}
}

// normalizeExpression lower-cases, removes all whitespace and collapses
// repeated operator characters so trivially different spellings compare
// equal.
func normalizeExpression(expr string) string {
	s := strings.ToLower(expr)
	s = whitespacePattern.ReplaceAllString(s, "")
	return operatorRunPattern.ReplaceAllString(s, "$1$2$3$4$5$6")
}
