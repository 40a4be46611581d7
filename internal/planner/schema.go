package planner

import "github.com/abhisek/coursegen/internal/llmjson"

// Models often quote numbers, so numeric fields accept both forms and are
// coerced after decoding.
var looseNumber = map[string]any{"type": []any{"integer", "number", "string"}}

var looseText = map[string]any{
	"anyOf": []any{
		map[string]any{"type": "string"},
		map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

// ChapterPlanContract is the shape of a chapter plan response.
var ChapterPlanContract = &llmjson.Contract{
	Name: "chapter-plan",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"chapter_number":      looseNumber,
				"chapter_name":        map[string]any{"type": "string"},
				"chapter_description": looseText,
				"chapter_difficulty":  looseNumber,
			},
			"required": []any{"chapter_name"},
		},
	},
}

// LessonPlanContract is the shape of a lesson plan response.
var LessonPlanContract = &llmjson.Contract{
	Name: "lesson-plan",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lesson_number":      looseNumber,
				"lesson_type":        map[string]any{"type": "string"},
				"lesson_type_ID":     looseNumber,
				"lesson_name":        map[string]any{"type": "string"},
				"lesson_description": looseText,
				"lesson_details":     looseText,
				"lesson_goals":       looseText,
				"lesson_guidelines":  looseText,
				"lesson_guidlines":   looseText,
			},
			"required": []any{"lesson_name"},
			"anyOf": []any{
				map[string]any{"required": []any{"lesson_type"}},
				map[string]any{"required": []any{"lesson_type_ID"}},
			},
		},
	},
}
