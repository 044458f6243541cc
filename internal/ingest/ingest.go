package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"resume-parser/constants"
	"resume-parser/internal/entity"
	"resume-parser/internal/repository"
)

// Usecase registers resume files for processing, deduplicating by content
// hash so the same document uploaded twice maps to one row.
type Usecase struct {
	Files       repository.FileRepository
	AllowedExts map[string]struct{}
}

func NewUsecase(files repository.FileRepository) *Usecase {
	return &Usecase{Files: files}
}

func (u *Usecase) allowed(ext string) bool {
	allow := u.AllowedExts
	if allow == nil {
		allow = constants.AllowedExtensions
	}
	_, ok := allow[constants.NormalizeExt(ext)]
	return ok
}

// IngestPath hashes the file at path and upserts it by hash.
func (u *Usecase) IngestPath(ctx context.Context, path string) (*entity.ResumeFile, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false, fmt.Errorf("abs path: %w", err)
	}
	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !u.allowed(ext) {
		return nil, false, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, false, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, false, fmt.Errorf("hash: %w", err)
	}
	hexHash := hex.EncodeToString(h.Sum(nil))

	row, dedup, err := u.Files.UpsertByHash(ctx, abs, ext, hexHash, time.Now().UTC())
	if err != nil {
		return nil, false, err
	}
	return row, dedup, nil
}

// WalkDir ingests every file with an allowed extension under dir,
// non-recursive dot-dir skipping aside. Returns ingested rows in walk order.
func (u *Usecase) WalkDir(ctx context.Context, dir string) ([]*entity.ResumeFile, error) {
	var out []*entity.ResumeFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && len(name) > 1 && name[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if !u.allowed(filepath.Ext(path)) {
			return nil
		}
		row, _, err := u.IngestPath(ctx, path)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
