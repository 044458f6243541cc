package extract

// BuildResumeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. The parse pipeline validates the serialized result against it
// before persisting, so a malformed engine change fails loudly instead of
// writing bad rows.
func BuildResumeJSONSchema() map[string]any {
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"email":       map[string]any{"type": "string"},
			"phone":       map[string]any{"type": "string"},
			"skills":      stringArray,
			"education":   stringArray,
			"total_years": map[string]any{"type": "number", "minimum": 0.0},
			"companies": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 1, // at least the sentinel
			},
		},
		"required": []string{"name", "email", "phone", "skills", "education", "total_years", "companies"},
	}
}
