package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resume-parser/constants"
	"resume-parser/internal/common"
	"resume-parser/internal/entity"
)

type JobRepository interface {
	Create(ctx context.Context, fileID uuid.UUID) (*entity.ParseJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseJob, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	// FinishTextExtract stores the extracted document text and moves the job
	// to TEXT_OK.
	FinishTextExtract(ctx context.Context, id uuid.UUID, text string) error
	// FinishParseSuccess records the serialized engine output and the review
	// heuristic, moving the job to PARSE_OK.
	FinishParseSuccess(ctx context.Context, id uuid.UUID, needsReview bool, rawJSON []byte) error
	FinishParseFailure(ctx context.Context, id uuid.UUID, errText string) error
}

type jobRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewJobRepository(db *sql.DB, logger *slog.Logger) JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobRepository{db: db, logger: logger}
}

func (r *jobRepository) Create(ctx context.Context, fileID uuid.UUID) (*entity.ParseJob, error) {
	j := &entity.ParseJob{
		ID:        uuid.New(),
		FileID:    fileID,
		Status:    string(constants.JobStatusQueued),
		StartedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO parse_jobs (id, file_id, status, started_at) VALUES ($1, $2, $3, $4)`,
		j.ID.String(), j.FileID.String(), j.Status, j.StartedAt)
	if err != nil {
		r.logger.Error("jobs.create.failed", "file_id", fileID, "error", err)
		return nil, fmt.Errorf("insert parse_job: %w", err)
	}
	return j, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseJob, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, file_id, status, resume_text, needs_review, error_text, started_at, finished_at
		 FROM parse_jobs WHERE id = $1`, id.String())

	var j entity.ParseJob
	var jobID, fileID string
	var finished sql.NullTime
	err := row.Scan(&jobID, &fileID, &j.Status, &j.ResumeText, &j.NeedsReview, &j.ErrorText, &j.StartedAt, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan parse_job: %w", err)
	}
	if j.ID, err = uuid.Parse(jobID); err != nil {
		return nil, fmt.Errorf("parse job id: %w", err)
	}
	if j.FileID, err = uuid.Parse(fileID); err != nil {
		return nil, fmt.Errorf("parse file id: %w", err)
	}
	if finished.Valid {
		j.FinishedAt = &finished.Time
	}
	return &j, nil
}

func (r *jobRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, `UPDATE parse_jobs SET status = $1 WHERE id = $2`,
		string(constants.JobStatusRunning), id.String())
}

func (r *jobRepository) FinishTextExtract(ctx context.Context, id uuid.UUID, text string) error {
	return r.update(ctx, `UPDATE parse_jobs SET status = $1, resume_text = $2 WHERE id = $3`,
		string(constants.JobStatusTextOK), text, id.String())
}

func (r *jobRepository) FinishParseSuccess(ctx context.Context, id uuid.UUID, needsReview bool, rawJSON []byte) error {
	return r.update(ctx,
		`UPDATE parse_jobs SET status = $1, needs_review = $2, raw_json = $3, finished_at = $4 WHERE id = $5`,
		string(constants.JobStatusParseOK), needsReview, string(rawJSON), time.Now().UTC(), id.String())
}

func (r *jobRepository) FinishParseFailure(ctx context.Context, id uuid.UUID, errText string) error {
	return r.update(ctx,
		`UPDATE parse_jobs SET status = $1, error_text = $2, finished_at = $3 WHERE id = $4`,
		string(constants.JobStatusFailed), errText, time.Now().UTC(), id.String())
}

func (r *jobRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("jobs.update.failed", "error", err)
		return fmt.Errorf("update parse_job: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
