package content

import "github.com/abhisek/coursegen/internal/llmjson"

var optionKey = map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}}

var nonEmpty = map[string]any{"type": "string", "minLength": 1}

// Free-text fields may come back as a list of lines; the decoders join them.
var looseText = map[string]any{"anyOf": []any{
	map[string]any{"type": "string"},
	map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
}}

// QuizContract is the shape of a multiple-choice quiz response.
var QuizContract = &llmjson.Contract{
	Name: "quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": nonEmpty,
						"options": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"A": map[string]any{"type": "string"},
								"B": map[string]any{"type": "string"},
								"C": map[string]any{"type": "string"},
								"D": map[string]any{"type": "string"},
							},
							"required": []any{"A", "B", "C", "D"},
						},
						"correct_answer": optionKey,
						"explanation":    looseText,
					},
					"required": []any{"question", "options", "correct_answer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// ExerciseContract is the shape of a programming exercise response.
var ExerciseContract = &llmjson.Contract{
	Name: "exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"starter_files": map[string]any{
				"type":                 "object",
				"minProperties":        1,
				"additionalProperties": map[string]any{"type": "string"},
			},
			"grading_method": map[string]any{
				"type": "string",
				"enum": []any{"ai_review", "terminal_matching"},
			},
			"expected_output": map[string]any{"type": []any{"string", "null"}},
		},
		"required": []any{"starter_files"},
	},
}

// TextResponseContract is the shape of an open-question set response.
var TextResponseContract = &llmjson.Contract{
	Name: "text-response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":         nonEmpty,
						"reference_answer": looseText,
					},
					"required": []any{"question", "reference_answer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// VideoQueryContract is the shape of a video search query response.
var VideoQueryContract = &llmjson.Contract{
	Name: "video-query",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query":             nonEmpty,
			"relevanceLanguage": map[string]any{"type": "string"},
			"regionCode":        map[string]any{"type": "string"},
			"videoCategoryId":   map[string]any{"type": []any{"string", "integer"}},
		},
		"required": []any{"query"},
	},
}

// FinalLessonContract is the shape of the capstone lesson narrative.
var FinalLessonContract = &llmjson.Contract{
	Name: "final-project-lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lesson_name":        nonEmpty,
			"lesson_description": map[string]any{},
			"lesson_details":     map[string]any{},
			"lesson_goals":       map[string]any{},
			"lesson_guidelines":  map[string]any{},
		},
		"required": []any{"lesson_name"},
	},
}

// FinalProjectContract is the shape of the capstone starter project.
var FinalProjectContract = &llmjson.Contract{
	Name: "final-project-files",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"project_name": map[string]any{"type": "string"},
			"description":  map[string]any{"type": "string"},
			"starter_files": map[string]any{
				"type":                 "object",
				"minProperties":        1,
				"additionalProperties": map[string]any{"type": "string"},
			},
			"grading_method": map[string]any{
				"type": "string",
				"enum": []any{"ai_review", "terminal_matching"},
			},
			"expected_output": map[string]any{"type": []any{"string", "null"}},
		},
		"required": []any{"starter_files"},
	},
}
