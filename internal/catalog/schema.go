package catalog

// contentSchema is the JSON Schema every loaded content file must satisfy
// before it is accepted into the catalog.
var contentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"subject": map[string]any{
			"type": "string",
			"enum": []any{
				"matematica", "linguagens", "ciencias-humanas",
				"ciencias-da-natureza", "redacao",
			},
		},
		"theme":       map[string]any{"type": "string"},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"text":        map[string]any{"type": "string", "minLength": 1},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"estimated_minutes": map[string]any{"type": "integer", "minimum": 1},
		"mentor_id":         map[string]any{"type": "string"},
		"activities": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"flashcards", "drag-drop", "fill-blank"},
					},
					"title": map[string]any{"type": "string"},
					"flashcards": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"front": map[string]any{"type": "string"},
								"back":  map[string]any{"type": "string"},
							},
							"required": []any{"front", "back"},
						},
					},
					"drag_items": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"label":    map[string]any{"type": "string"},
								"category": map[string]any{"type": "string"},
							},
							"required": []any{"label", "category"},
						},
					},
					"categories": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"blank_questions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"prompt": map[string]any{"type": "string"},
								"blanks": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"answer": map[string]any{"type": "string"},
											"alternatives": map[string]any{
												"type":  "array",
												"items": map[string]any{"type": "string"},
											},
										},
										"required": []any{"answer"},
									},
								},
							},
							"required": []any{"prompt"},
						},
					},
				},
				"required": []any{"kind"},
			},
		},
		"quiz": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"correct_index": map[string]any{"type": "integer", "minimum": 0},
					"explanation":   map[string]any{"type": "string"},
				},
				"required": []any{"prompt", "options", "correct_index"},
			},
		},
		"challenge": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt":            map[string]any{"type": "string", "minLength": 1},
				"points":            map[string]any{"type": "integer", "minimum": 0},
				"badge_id":          map[string]any{"type": "string", "minLength": 1},
				"badge_name":        map[string]any{"type": "string"},
				"badge_description": map[string]any{"type": "string"},
				"badge_icon":        map[string]any{"type": "string"},
			},
			"required": []any{"prompt", "points", "badge_id"},
		},
	},
	"required":             []any{"id", "subject", "title", "text", "difficulty"},
	"additionalProperties": false,
}
