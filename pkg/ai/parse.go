package ai

import (
	"encoding/json"
	"strings"
)

// DefaultGradeOutput is substituted when a provider responds but its output
// cannot be parsed as a grade. The low confidence flags the result for
// review downstream.
func DefaultGradeOutput() GradeOutput {
	return GradeOutput{
		Score:       0.5,
		Confidence:  0.3,
		Explanation: "AI response could not be parsed; manual review recommended",
	}
}

// ExtractJSONObject returns the first top-level JSON object found in raw by
// brace matching, skipping braces inside string literals. Providers are asked
// for pure JSON; this is the degraded path for models that wrap the object in
// prose.
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}

	return "", false
}

// ParseGradeOutput extracts and validates a grade object from raw provider
// text. It never fails: any extraction, schema, or unmarshalling problem
// yields (DefaultGradeOutput(), false).
func ParseGradeOutput(raw string) (GradeOutput, bool) {
	content := strings.TrimSpace(raw)
	if !json.Valid([]byte(content)) {
		extracted, ok := ExtractJSONObject(content)
		if !ok {
			return DefaultGradeOutput(), false
		}
		content = extracted
	}

	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return DefaultGradeOutput(), false
	}
	if err := gradeSchema.Validate(parsed); err != nil {
		return DefaultGradeOutput(), false
	}

	var out GradeOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return DefaultGradeOutput(), false
	}

	out.Score = clamp01(out.Score)
	if out.Confidence == 0 {
		out.Confidence = 0.8
	}
	out.Confidence = clamp01(out.Confidence)
	return out, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
