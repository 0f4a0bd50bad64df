package quizgen

import "quizforge/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
// It is only sent to the provider when Config.StructuredOutput is set;
// the validator enforces the same shape either way.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A set of multiple-choice quiz questions derived from a source text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, grounded in the source material",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct option, verbatim identical to one of the options",
						},
					},
					"required":             []any{"question", "options", "correctAnswer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
