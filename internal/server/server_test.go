package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/entity"
	"resume-parser/internal/extract"
	"resume-parser/internal/nlp"
)

func newTestServer(t *testing.T, provider nlp.EntityProvider) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := extract.NewEngine(provider, logger)
	return NewServer(engine, nil, nil, nil, nil, t.TempDir(), logger)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseEndpoint(t *testing.T) {
	provider := nlp.Static([]nlp.Span{
		{Text: "Jane Smith", Label: "PERSON"},
	})
	s := newTestServer(t, provider)

	body, _ := json.Marshal(map[string]string{
		"text": "reach jane at jane.smith@corp.io or 555-123-4567",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got entity.ParsedResume
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, "jane.smith@corp.io", got.Email)
	assert.Equal(t, "555-123-4567", got.Phone)
	assert.Equal(t, 0.0, got.TotalYears)
}

func TestParseEndpointInlineEntities(t *testing.T) {
	// No provider configured; the request carries its own annotation.
	s := newTestServer(t, nil)

	body, _ := json.Marshal(map[string]any{
		"text": "at Initech i shipped python services",
		"entities": []nlp.Span{
			{Text: "Jon Snow", Label: "PERSON"},
		},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got entity.ParsedResume
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jon Snow", got.Name)
	assert.Contains(t, got.Skills, "python")
}

func TestParseEndpointRequiresText(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetResumeRejectsBadID(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/resumes/not-a-uuid", nil)
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
