package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	spans := []Span{{Text: "Jane Roe", Label: "PERSON"}}
	got, err := Static(spans).Entities(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, spans, got)
}

func TestNoopProvider(t *testing.T) {
	got, err := Noop{}.Entities(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, got)
}
