package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProviderEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/entities", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "John Doe worked at Initech", req.Text)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"entities": []Span{
				{Text: "John Doe", Label: "PERSON"},
				{Text: "Initech", Label: "ORG"},
			},
		})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second, nil)
	spans, err := p.Entities(context.Background(), "John Doe worked at Initech")
	require.NoError(t, err)
	assert.Equal(t, []Span{
		{Text: "John Doe", Label: "PERSON"},
		{Text: "Initech", Label: "ORG"},
	}, spans)
}

func TestHTTPProviderNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second, nil)
	_, err := p.Entities(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx")
}

func TestHTTPProviderBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second, nil)
	_, err := p.Entities(context.Background(), "text")
	require.Error(t, err)
}
