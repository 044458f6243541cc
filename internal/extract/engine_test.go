package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/nlp"
)

const sampleResume = `john doe
email: john.doe@example.com
phone: (555) 123-4567
i have 6+ years of experience building services in python and django.
Bachelor of Science in Computer Science
i worked at Initech Solutions. before that i was self-employed.`

var sampleSpans = []nlp.Span{
	{Text: "John Doe", Label: "PERSON"},
	{Text: "Stanford University", Label: "ORG"},
	{Text: "Initech Solutions", Label: "ORG"},
}

func TestParseWithSpans(t *testing.T) {
	got := ParseWithSpans(sampleResume, sampleSpans, frozenNow)

	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john.doe@example.com", got.Email)
	assert.Equal(t, "(555) 123-4567", got.Phone)
	assert.Equal(t, []string{"django", "python"}, got.Skills)
	assert.Equal(t, []string{"Stanford University", "Bachelor of Science", "Computer Science"}, got.Education)
	assert.Equal(t, 6.0, got.TotalYears)
	assert.Equal(t, []string{"Initech Solutions"}, got.Companies)
}

type countingProvider struct {
	spans []nlp.Span
	calls int
}

func (p *countingProvider) Entities(context.Context, string) ([]nlp.Span, error) {
	p.calls++
	return p.spans, nil
}

type failingProvider struct{}

func (failingProvider) Entities(context.Context, string) ([]nlp.Span, error) {
	return nil, errors.New("sidecar unreachable")
}

func TestEngineParse(t *testing.T) {
	provider := &countingProvider{spans: sampleSpans}
	e := NewEngine(provider, nil)
	e.Now = func() time.Time { return frozenNow }

	got, err := e.Parse(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls, "provider is invoked once per document")
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, 6.0, got.TotalYears)
}

func TestEngineParseProviderFailure(t *testing.T) {
	e := NewEngine(failingProvider{}, nil)
	_, err := e.Parse(context.Background(), sampleResume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity provider")
}

func TestEngineNilProviderDefaultsToNoop(t *testing.T) {
	e := NewEngine(nil, nil)
	got, err := e.Parse(context.Background(), "email me at a@b.io")
	require.NoError(t, err)
	assert.Equal(t, "a@b.io", got.Email)
	assert.Equal(t, "", got.Name)
}
