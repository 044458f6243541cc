// Package textextract turns a stored resume file into plain text. PDF pages
// are concatenated in reading order and DOCX paragraphs joined with newlines
// (docconv does both), because downstream patterns — date ranges, "in
// <field>" — are sensitive to nearby whitespace.
package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"code.sajari.com/docconv"
	"github.com/google/uuid"

	"resume-parser/internal/repository"
)

// Result summarizes one text-extract run.
type Result struct {
	Method string // "docconv" or "plain"
	Bytes  int
}

type Pipeline struct {
	Logger *slog.Logger
	Files  repository.FileRepository
	Jobs   repository.JobRepository
}

func NewPipeline(logger *slog.Logger, files repository.FileRepository, jobs repository.JobRepository) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger, Files: files, Jobs: jobs}
}

// Run creates a parse job for fileID, extracts the document text, normalizes
// it and stores it on the job. Returns the new jobID.
func (p *Pipeline) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, Result, error) {
	start := time.Now()

	file, err := p.Files.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, Result{}, fmt.Errorf("load file: %w", err)
	}

	job, err := p.Jobs.Create(ctx, fileID)
	if err != nil {
		return uuid.Nil, Result{}, fmt.Errorf("create job: %w", err)
	}
	if err := p.Jobs.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, Result{}, err
	}

	text, method, err := extractText(file.SourcePath, file.FileExt)
	if err != nil {
		_ = p.Jobs.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, Result{}, fmt.Errorf("extract text: %w", err)
	}
	text = Normalize(text)

	if err := p.Jobs.FinishTextExtract(ctx, job.ID, text); err != nil {
		return job.ID, Result{}, err
	}

	res := Result{Method: method, Bytes: len(text)}
	p.Logger.Info("textextract.ok",
		"file_id", fileID,
		"job_id", job.ID,
		"method", res.Method,
		"bytes", res.Bytes,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return job.ID, res, nil
}

func extractText(path, ext string) (string, string, error) {
	switch ext {
	case "pdf", "docx", "doc":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", "", fmt.Errorf("docconv %s: %w", ext, err)
		}
		return res.Body, "docconv", nil
	case "txt":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("read txt: %w", err)
		}
		return string(b), "plain", nil
	default:
		return "", "", fmt.Errorf("unsupported file type: %s", ext)
	}
}
