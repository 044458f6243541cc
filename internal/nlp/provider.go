package nlp

import "context"

// Span is one labeled entity mention, immutable for the lifetime of a
// processing call. Label values are the recognizer's own (PERSON, ORG, ...).
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityProvider is the seam to the external recognition model: text in,
// labeled spans out, in document order. The engine invokes it at most once
// per document and shares the result read-only across all extractors.
type EntityProvider interface {
	Entities(ctx context.Context, text string) ([]Span, error)
}

// Static returns a provider that always yields the given spans. Used for
// deterministic fixtures in tests and for the raw-text parse endpoint where
// the caller supplies its own annotation set.
func Static(spans []Span) EntityProvider {
	return staticProvider(spans)
}

type staticProvider []Span

func (p staticProvider) Entities(context.Context, string) ([]Span, error) {
	return []Span(p), nil
}

// Noop is a provider that recognizes nothing. Entity-dependent passes simply
// find no matches; regex-only passes still run.
type Noop struct{}

func (Noop) Entities(context.Context, string) ([]Span, error) {
	return nil, nil
}
