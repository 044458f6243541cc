package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/entity"
	"resume-parser/internal/pipeline/parsefields"
	"resume-parser/internal/pipeline/textextract"
)

type unreachableFiles struct{}

func (unreachableFiles) UpsertByHash(context.Context, string, string, string, time.Time) (*entity.ResumeFile, bool, error) {
	return nil, false, errors.New("store offline")
}

func (unreachableFiles) GetByID(context.Context, uuid.UUID) (*entity.ResumeFile, error) {
	return nil, errors.New("store offline")
}

type unreachableJobs struct{}

func (unreachableJobs) Create(context.Context, uuid.UUID) (*entity.ParseJob, error) {
	return nil, errors.New("store offline")
}

func (unreachableJobs) GetByID(context.Context, uuid.UUID) (*entity.ParseJob, error) {
	return nil, errors.New("store offline")
}

func (unreachableJobs) MarkRunning(context.Context, uuid.UUID) error { return errors.New("store offline") }

func (unreachableJobs) FinishTextExtract(context.Context, uuid.UUID, string) error {
	return errors.New("store offline")
}

func (unreachableJobs) FinishParseSuccess(context.Context, uuid.UUID, bool, []byte) error {
	return errors.New("store offline")
}

func (unreachableJobs) FinishParseFailure(context.Context, uuid.UUID, string) error {
	return errors.New("store offline")
}

func TestProcessFileFailureLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	p := NewProcessor(logger,
		textextract.NewPipeline(logger, unreachableFiles{}, unreachableJobs{}),
		parsefields.NewPipeline(logger, unreachableJobs{}, nil, nil))

	_, err := p.ProcessFile(context.Background(), uuid.New())
	require.Error(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "processor.textextract.failed", line["msg"])
	assert.Contains(t, line, "error", "failures log under the error key")
	assert.NotContains(t, line, "err")
}
