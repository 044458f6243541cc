package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resume-parser/internal/entity"
	"resume-parser/internal/nlp"
)

// Engine runs the seven field extractors over one document. It holds no
// cross-call state; the pattern library it reads is immutable, so one Engine
// may serve concurrent calls.
type Engine struct {
	Provider nlp.EntityProvider
	Logger   *slog.Logger
	Now      func() time.Time // injectable for date-range tests
}

func NewEngine(provider nlp.EntityProvider, logger *slog.Logger) *Engine {
	if provider == nil {
		provider = nlp.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{Provider: provider, Logger: logger, Now: time.Now}
}

// Parse annotates text once via the entity provider and runs every extractor
// on the shared result. Provider failure is the only error path; a document
// where nothing matches is a normal zero-valued result.
func (e *Engine) Parse(ctx context.Context, text string) (entity.ParsedResume, error) {
	start := time.Now()

	spans, err := e.Provider.Entities(ctx, text)
	if err != nil {
		e.Logger.Error("engine.entities.failed", "error", err)
		return entity.ParsedResume{}, fmt.Errorf("entity provider: %w", err)
	}

	result := ParseWithSpans(text, spans, e.Now())

	e.Logger.Info("engine.parse.ok",
		"text_bytes", len(text),
		"entities", len(spans),
		"skills", len(result.Skills),
		"education", len(result.Education),
		"companies", len(result.Companies),
		"total_years", result.TotalYears,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// ParseWithSpans is the pure core: no I/O, no provider call, deterministic
// for a fixed now. Extractors are independent; none sees another's output.
func ParseWithSpans(text string, spans []nlp.Span, now time.Time) entity.ParsedResume {
	return entity.ParsedResume{
		Name:       Name(spans),
		Email:      Email(text),
		Phone:      Phone(text),
		Skills:     Skills(spans, text),
		Education:  Education(spans, text),
		TotalYears: ExperienceYears(text, now),
		Companies:  Companies(spans, text),
	}
}
