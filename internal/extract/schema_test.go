package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/constants"
	"resume-parser/internal/entity"
)

func TestValidateEngineOutput(t *testing.T) {
	fields := entity.ParsedResume{
		Name:       "John Doe",
		Email:      "john@example.com",
		Phone:      "555-123-4567",
		Skills:     []string{"python"},
		Education:  []string{},
		TotalYears: 2.5,
		Companies:  []string{constants.NoCompaniesDetected},
	}
	raw, err := json.Marshal(fields)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONAgainstSchema(BuildResumeJSONSchema(), raw))
}

func TestValidateRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing required field", `{"name":"x","email":"","phone":"","skills":[],"education":[],"total_years":0}`},
		{"negative years", `{"name":"","email":"","phone":"","skills":[],"education":[],"total_years":-1,"companies":["x"]}`},
		{"empty companies", `{"name":"","email":"","phone":"","skills":[],"education":[],"total_years":0,"companies":[]}`},
		{"unknown property", `{"name":"","email":"","phone":"","skills":[],"education":[],"total_years":0,"companies":["x"],"extra":1}`},
		{"wrong type", `{"name":1,"email":"","phone":"","skills":[],"education":[],"total_years":0,"companies":["x"]}`},
	}
	schema := BuildResumeJSONSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(tt.doc)))
		})
	}
}
