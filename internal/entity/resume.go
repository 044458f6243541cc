package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParsedResume is the aggregate extraction result for one document.
// It is created once per processing call and never mutated by the engine;
// review edits produce a new row state instead.
type ParsedResume struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`      // alphabetical, no duplicates
	Education  []string `json:"education"`   // orgs, then degrees, then majors
	TotalYears float64  `json:"total_years"` // >= 0
	Companies  []string `json:"companies"`   // alphabetical, or the one-element sentinel
}

// Resume is a stored parse result for data transfer between layers.
type Resume struct {
	ID        uuid.UUID    `json:"id"`
	FileID    uuid.UUID    `json:"file_id"`
	JobID     uuid.UUID    `json:"job_id"`
	Fields    ParsedResume `json:"fields"`
	Edited    bool         `json:"edited"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ResumeFile represents an ingested source document.
type ResumeFile struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	FileExt     string    `json:"file_ext"`
	ContentHash string    `json:"-"` // hex-encoded sha256
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ParseJob tracks one processing attempt over a file.
type ParseJob struct {
	ID          uuid.UUID  `json:"id"`
	FileID      uuid.UUID  `json:"file_id"`
	Status      string     `json:"status"`
	ResumeText  string     `json:"-"`
	NeedsReview bool       `json:"needs_review"`
	ErrorText   string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}
