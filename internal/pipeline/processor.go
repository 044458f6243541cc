package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	parse "resume-parser/internal/pipeline/parsefields"
	"resume-parser/internal/pipeline/textextract"
)

// Processor coordinates text extraction then field extraction for one file.
type Processor struct {
	Logger *slog.Logger
	Text   *textextract.Pipeline
	Parse  *parse.Pipeline
}

func NewProcessor(logger *slog.Logger, text *textextract.Pipeline, parse *parse.Pipeline) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse}
}

// ProcessFile runs text extraction for fileID (creating the parse job), then
// field extraction on the resulting job. Returns the jobID either way so a
// failed run stays inspectable.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	jobID, res, err := p.Text.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.textextract.failed", "file_id", fileID, "error", err)
		return jobID, err
	}
	p.Logger.Info("processor.textextract.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", res.Method,
		"bytes", res.Bytes,
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "error", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
