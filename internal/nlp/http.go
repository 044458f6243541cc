package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HTTPProvider calls a NER sidecar service (e.g. a spaCy wrapper) over HTTP.
// Request:  POST {base}/entities  {"text": "..."}
// Response: {"entities": [{"text": "...", "label": "PERSON"}, ...]}
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
	Logger  *slog.Logger
}

func NewHTTPProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPProvider {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

type entitiesRequest struct {
	Text string `json:"text"`
}

type entitiesResponse struct {
	Entities []Span `json:"entities"`
}

func (p *HTTPProvider) Entities(ctx context.Context, text string) ([]Span, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(entitiesRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/entities", bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.Logger.Debug("nlp.http.request", "req_id", reqID, "content_length", len(bs))

	resp, err := p.Client.Do(req)
	if err != nil {
		p.Logger.Error("nlp.http.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			p.Logger.Warn("nlp.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	p.Logger.Debug("nlp.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("ner service: non-2xx status: %d", resp.StatusCode)
	}

	var out entitiesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	return out.Entities, nil
}
