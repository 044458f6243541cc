package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser/internal/nlp"
)

func TestEducationOrdering(t *testing.T) {
	spans := []nlp.Span{
		{Text: "Stanford University", Label: "ORG"},
		{Text: "Initech Solutions", Label: "ORG"},
	}
	text := "Bachelor of Science in Computer Science, graduated 2018"

	got := Education(spans, text)
	assert.Equal(t, []string{
		"Stanford University",
		"Bachelor of Science",
		"Computer Science",
	}, got)
}

func TestEducationDegreeOnly(t *testing.T) {
	got := Education(nil, "MBA, 2015. Earlier: Diploma in Marketing.")
	assert.Equal(t, []string{"MBA", "Diploma", "Marketing"}, got)
}

func TestEducationExactDedupOnly(t *testing.T) {
	text := "Master of Science in Physics. Master of Science in Physics."
	got := Education(nil, text)
	assert.Equal(t, []string{"Master of Science", "Physics"}, got)

	// Differently cased org mentions stay separate entries.
	spans := []nlp.Span{
		{Text: "MIT School of Engineering", Label: "ORG"},
		{Text: "MIT SCHOOL OF ENGINEERING", Label: "ORG"},
	}
	got = Education(spans, "")
	assert.Len(t, got, 2)
}

func TestEducationEmpty(t *testing.T) {
	got := Education(nil, "ten years of plumbing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
