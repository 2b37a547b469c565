package ai

import "github.com/santhosh-tekuri/jsonschema/v5"

// gradeSchema validates the JSON object a provider returns before it is
// trusted. Extra fields are allowed; score must be present and every scored
// field must be in range.
var gradeSchema = jsonschema.MustCompileString("schema://grade.json", `{
	"type": "object",
	"required": ["score"],
	"properties": {
		"score": {"type": "number", "minimum": 0, "maximum": 1},
		"marksAwarded": {"type": "number"},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"explanation": {"type": "string"},
		"keyPoints": {"type": "array", "items": {"type": "string"}},
		"qualityScore": {"type": "number"},
		"relevanceScore": {"type": "number"}
	}
}`)
