package ai

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// promptSanitizer strips any markup from answers before they are embedded in
// a prompt. Student text often arrives from rich-text editors.
var promptSanitizer = bluemonday.StrictPolicy()

func graderSystemPrompt() string {
	return "You are an automated exam grader. Respond with a JSON object containing score (0-1), marksAwarded, confidence (0-" +
		"1), explanation, keyPoints (array of strings), qualityScore (0-1), and relevanceScore (0-1). Grade against the refere" +
		"nce answer; reward correct ideas expressed in different words."
}

func buildGradingPrompt(input GradeInput) string {
	builder := strings.Builder{}
	builder.WriteString("# Question\n")
	builder.WriteString(promptSanitizer.Sanitize(input.QuestionText))
	builder.WriteString("\n\n## Reference Answer\n")
	builder.WriteString(promptSanitizer.Sanitize(input.ReferenceAnswer))
	builder.WriteString("\n\n## Student Answer\n")
	builder.WriteString(promptSanitizer.Sanitize(input.StudentAnswer))
	builder.WriteString("\n\n## Maximum Marks\n")
	builder.WriteString(fmt.Sprintf("%g", input.MaxMarks))
	builder.WriteString("\nReturn JSON.")
	return builder.String()
}
