package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser/internal/nlp"
)

func TestName(t *testing.T) {
	spans := []nlp.Span{
		{Text: "Jon", Label: "PERSON"},
		{Text: "Jonathan Michael Smith", Label: "PERSON"},
		{Text: "Initech Solutions", Label: "ORG"},
	}
	assert.Equal(t, "Jonathan Michael Smith", Name(spans))
}

func TestNameLengthIsCharacterCount(t *testing.T) {
	// "André Müller" is 14 bytes but only 12 characters; the 13-character
	// ASCII name is longer.
	spans := []nlp.Span{
		{Text: "André Müller", Label: "PERSON"},
		{Text: "Bob Armstrong", Label: "PERSON"},
	}
	assert.Equal(t, "Bob Armstrong", Name(spans))
}

func TestNameTieKeepsEarlier(t *testing.T) {
	spans := []nlp.Span{
		{Text: "Jane Roe", Label: "PERSON"},
		{Text: "John Doe", Label: "PERSON"},
	}
	assert.Equal(t, "Jane Roe", Name(spans))
}

func TestNameNoPerson(t *testing.T) {
	assert.Equal(t, "", Name([]nlp.Span{{Text: "Initech", Label: "ORG"}}))
	assert.Equal(t, "", Name(nil))
}
