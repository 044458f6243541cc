package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/common"
	"resume-parser/internal/entity"
)

// memFiles is an in-memory FileRepository keyed by content hash.
type memFiles struct {
	byHash map[string]*entity.ResumeFile
}

func newMemFiles() *memFiles {
	return &memFiles{byHash: make(map[string]*entity.ResumeFile)}
}

func (m *memFiles) UpsertByHash(_ context.Context, sourcePath, fileExt, contentHash string, uploadedAt time.Time) (*entity.ResumeFile, bool, error) {
	if existing, ok := m.byHash[contentHash]; ok {
		return existing, true, nil
	}
	f := &entity.ResumeFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		FileExt:     fileExt,
		ContentHash: contentHash,
		UploadedAt:  uploadedAt,
	}
	m.byHash[contentHash] = f
	return f, false, nil
}

func (m *memFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.ResumeFile, error) {
	for _, f := range m.byHash {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, common.ErrNotFound
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPathDedup(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "resume.txt", "john doe, python developer")
	u := NewUsecase(newMemFiles())

	first, dedup, err := u.IngestPath(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, dedup)
	assert.Equal(t, "txt", first.FileExt)

	// Same bytes under another name hash to the same row.
	copyPath := writeFile(t, dir, "copy.txt", "john doe, python developer")
	second, dedup, err := u.IngestPath(context.Background(), copyPath)
	require.NoError(t, err)
	assert.True(t, dedup)
	assert.Equal(t, first.ID, second.ID)
}

func TestIngestPathRejectsUnsupportedExt(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", "not a resume")
	u := NewUsecase(newMemFiles())

	_, _, err := u.IngestPath(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestWalkDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "candidate a")
	writeFile(t, dir, "b.txt", "candidate b")
	writeFile(t, dir, "notes.log", "skip me")

	hidden := filepath.Join(dir, ".cache")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	writeFile(t, hidden, "c.txt", "hidden candidate")

	u := NewUsecase(newMemFiles())
	rows, err := u.WalkDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
