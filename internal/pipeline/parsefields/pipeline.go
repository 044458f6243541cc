package parsefields

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"resume-parser/constants"
	"resume-parser/internal/entity"
	"resume-parser/internal/extract"
	"resume-parser/internal/repository"
)

type Pipeline struct {
	Logger  *slog.Logger
	Jobs    repository.JobRepository
	Resumes repository.ResumeRepository
	Engine  *extract.Engine
}

func NewPipeline(logger *slog.Logger, jobs repository.JobRepository, resumes repository.ResumeRepository, engine *extract.Engine) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger, Jobs: jobs, Resumes: resumes, Engine: engine}
}

// Run executes the field-extraction stage for an existing text-extract job.
// Preconditions: job is TEXT_OK with non-empty resume_text.
// Effects: validates the serialized result, upserts the resumes row, and
// finishes the job with the needs_review heuristic.
func (p *Pipeline) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status != string(constants.JobStatusTextOK) || job.ResumeText == "" {
		return job.ID, fmt.Errorf("job not ready for parse: status=%s text_empty=%t",
			job.Status, job.ResumeText == "")
	}

	p.Logger.Info("parsefields.start", "job_id", job.ID, "file_id", job.FileID, "text_bytes", len(job.ResumeText))

	fields, err := p.Engine.Parse(ctx, job.ResumeText)
	if err != nil {
		_ = p.Jobs.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("engine parse: %w", err)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		_ = p.Jobs.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("encode fields: %w", err)
	}
	if err := extract.ValidateJSONAgainstSchema(extract.BuildResumeJSONSchema(), raw); err != nil {
		_ = p.Jobs.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate fields: %w", err)
	}

	needsReview := NeedsReview(fields)

	rec, err := p.Resumes.UpsertFromFields(ctx, job.FileID, job.ID, fields)
	if err != nil {
		_ = p.Jobs.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert resume: %w", err)
	}
	if err := p.Jobs.FinishParseSuccess(ctx, job.ID, needsReview, raw); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsefields.ok",
		"job_id", job.ID, "resume_id", rec.ID,
		"name", fields.Name,
		"email", fields.Email,
		"skills", len(fields.Skills),
		"total_years", fields.TotalYears,
		"needs_review", needsReview,
	)
	return job.ID, nil
}

// NeedsReview flags results a reviewer should look at before trusting:
// missing identity fields, or a companies list that is only the sentinel.
func NeedsReview(fields entity.ParsedResume) bool {
	if fields.Name == "" || fields.Email == "" {
		return true
	}
	if len(fields.Companies) == 1 && fields.Companies[0] == constants.NoCompaniesDetected {
		return true
	}
	return false
}
