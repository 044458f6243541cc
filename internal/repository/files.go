package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resume-parser/internal/common"
	"resume-parser/internal/entity"
)

type FileRepository interface {
	// UpsertByHash inserts the file or returns the existing row when the
	// content hash is already known. The bool reports dedup.
	UpsertByHash(ctx context.Context, sourcePath, fileExt, contentHash string, uploadedAt time.Time) (*entity.ResumeFile, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ResumeFile, error)
}

type fileRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewFileRepository(db *sql.DB, logger *slog.Logger) FileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &fileRepository{db: db, logger: logger}
}

func (r *fileRepository) UpsertByHash(ctx context.Context, sourcePath, fileExt, contentHash string, uploadedAt time.Time) (*entity.ResumeFile, bool, error) {
	existing, err := r.getByHash(ctx, contentHash)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	f := &entity.ResumeFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		FileExt:     fileExt,
		ContentHash: contentHash,
		UploadedAt:  uploadedAt,
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO resume_files (id, source_path, file_ext, content_hash, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (content_hash) DO NOTHING`,
		f.ID.String(), f.SourcePath, f.FileExt, f.ContentHash, f.UploadedAt)
	if err != nil {
		r.logger.Error("files.upsert.failed", "source_path", sourcePath, "error", err)
		return nil, false, fmt.Errorf("insert resume_file: %w", err)
	}
	// Re-read through the hash in case a concurrent insert won the conflict.
	row, err := r.getByHash(ctx, contentHash)
	if err != nil {
		return nil, false, err
	}
	return row, row.ID != f.ID, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ResumeFile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, source_path, file_ext, content_hash, uploaded_at
		 FROM resume_files WHERE id = $1`, id.String()))
}

func (r *fileRepository) getByHash(ctx context.Context, contentHash string) (*entity.ResumeFile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, source_path, file_ext, content_hash, uploaded_at
		 FROM resume_files WHERE content_hash = $1`, contentHash))
}

func (r *fileRepository) scanOne(row *sql.Row) (*entity.ResumeFile, error) {
	var f entity.ResumeFile
	var id string
	err := row.Scan(&id, &f.SourcePath, &f.FileExt, &f.ContentHash, &f.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan resume_file: %w", err)
	}
	f.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse file id: %w", err)
	}
	return &f, nil
}
