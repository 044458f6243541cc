package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resume-parser/internal/common"
	"resume-parser/internal/entity"
)

type ResumeRepository interface {
	// UpsertFromFields writes the engine output for a file, replacing any
	// previous parse of the same file. Upserts never carry the edited flag
	// forward; a re-parse starts clean.
	UpsertFromFields(ctx context.Context, fileID, jobID uuid.UUID, fields entity.ParsedResume) (*entity.Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Resume, error)
	GetByFileID(ctx context.Context, fileID uuid.UUID) (*entity.Resume, error)
	List(ctx context.Context) ([]*entity.Resume, error)
	// ApplyEdits replaces the stored fields with the reviewer's version and
	// marks the row edited. The engine never reads these back.
	ApplyEdits(ctx context.Context, id uuid.UUID, fields entity.ParsedResume) (*entity.Resume, error)
}

type resumeRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewResumeRepository(db *sql.DB, logger *slog.Logger) ResumeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &resumeRepository{db: db, logger: logger}
}

const resumeColumns = `id, file_id, job_id, full_name, email, phone, skills, education, total_years, companies, edited, created_at, updated_at`

func (r *resumeRepository) UpsertFromFields(ctx context.Context, fileID, jobID uuid.UUID, fields entity.ParsedResume) (*entity.Resume, error) {
	skills, education, companies, err := marshalLists(fields)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	id := uuid.New()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO resumes (`+resumeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, $11, $11)
		 ON CONFLICT (file_id) DO UPDATE SET
			job_id = $3, full_name = $4, email = $5, phone = $6,
			skills = $7, education = $8, total_years = $9, companies = $10,
			edited = FALSE, updated_at = $11`,
		id.String(), fileID.String(), jobID.String(),
		fields.Name, fields.Email, fields.Phone,
		skills, education, fields.TotalYears, companies, now)
	if err != nil {
		r.logger.Error("resumes.upsert.failed", "file_id", fileID, "error", err)
		return nil, fmt.Errorf("upsert resume: %w", err)
	}
	return r.GetByFileID(ctx, fileID)
}

func (r *resumeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Resume, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id.String()))
}

func (r *resumeRepository) GetByFileID(ctx context.Context, fileID uuid.UUID) (*entity.Resume, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE file_id = $1`, fileID.String()))
}

func (r *resumeRepository) List(ctx context.Context) ([]*entity.Resume, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+resumeColumns+` FROM resumes ORDER BY created_at`)
	if err != nil {
		r.logger.Error("resumes.list.failed", "error", err)
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Resume
	for rows.Next() {
		rec, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *resumeRepository) ApplyEdits(ctx context.Context, id uuid.UUID, fields entity.ParsedResume) (*entity.Resume, error) {
	skills, education, companies, err := marshalLists(fields)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE resumes SET
			full_name = $1, email = $2, phone = $3,
			skills = $4, education = $5, total_years = $6, companies = $7,
			edited = TRUE, updated_at = $8
		 WHERE id = $9`,
		fields.Name, fields.Email, fields.Phone,
		skills, education, fields.TotalYears, companies,
		time.Now().UTC(), id.String())
	if err != nil {
		r.logger.Error("resumes.edit.failed", "id", id, "error", err)
		return nil, fmt.Errorf("apply edits: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, common.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *resumeRepository) scanOne(row *sql.Row) (*entity.Resume, error) {
	rec, err := r.scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return rec, err
}

func (r *resumeRepository) scanRow(row rowScanner) (*entity.Resume, error) {
	var rec entity.Resume
	var id, fileID, jobID, skills, education, companies string
	err := row.Scan(&id, &fileID, &jobID,
		&rec.Fields.Name, &rec.Fields.Email, &rec.Fields.Phone,
		&skills, &education, &rec.Fields.TotalYears, &companies,
		&rec.Edited, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if rec.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse resume id: %w", err)
	}
	if rec.FileID, err = uuid.Parse(fileID); err != nil {
		return nil, fmt.Errorf("parse file id: %w", err)
	}
	if rec.JobID, err = uuid.Parse(jobID); err != nil {
		return nil, fmt.Errorf("parse job id: %w", err)
	}
	if err := json.Unmarshal([]byte(skills), &rec.Fields.Skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	if err := json.Unmarshal([]byte(education), &rec.Fields.Education); err != nil {
		return nil, fmt.Errorf("decode education: %w", err)
	}
	if err := json.Unmarshal([]byte(companies), &rec.Fields.Companies); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return &rec, nil
}

func marshalLists(fields entity.ParsedResume) (skills, education, companies string, err error) {
	enc := func(v []string) (string, error) {
		if v == nil {
			v = []string{}
		}
		b, err := json.Marshal(v)
		return string(b), err
	}
	if skills, err = enc(fields.Skills); err != nil {
		return "", "", "", fmt.Errorf("encode skills: %w", err)
	}
	if education, err = enc(fields.Education); err != nil {
		return "", "", "", fmt.Errorf("encode education: %w", err)
	}
	if companies, err = enc(fields.Companies); err != nil {
		return "", "", "", fmt.Errorf("encode companies: %w", err)
	}
	return skills, education, companies, nil
}
