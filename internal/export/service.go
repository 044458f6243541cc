package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"resume-parser/internal/repository"
)

// Service is a tiny façade over the resume repository that produces XLSX
// bytes for exports.
type Service struct {
	resumes repository.ResumeRepository
	files   repository.FileRepository
	logger  *slog.Logger
}

func NewService(resumes repository.ResumeRepository, files repository.FileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resumes: resumes, files: files, logger: logger}
}

// ExportResumesXLSX returns an XLSX workbook (as bytes) with one row per
// parsed resume. List fields are comma-joined the way the review form shows
// them.
func (s *Service) ExportResumesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.resumes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query resumes: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Resumes"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Email",
		"Phone",
		"Total Years",
		"Skills",
		"Education",
		"Companies",
		"Edited",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		sourcePath := ""
		if fileRow, err := s.files.GetByID(ctx, r.FileID); err == nil && fileRow != nil {
			sourcePath = fileRow.SourcePath
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Fields.Name)
		write(2, r.Fields.Email)
		write(3, r.Fields.Phone)
		write(4, r.Fields.TotalYears)
		write(5, strings.Join(r.Fields.Skills, ", "))
		write(6, strings.Join(r.Fields.Education, ", "))
		write(7, strings.Join(r.Fields.Companies, ", "))
		write(8, r.Edited)
		write(9, sourcePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "B", 28) // email
	_ = f.SetColWidth(sheet, "C", "D", 14) // phone, years
	_ = f.SetColWidth(sheet, "E", "G", 48) // lists
	_ = f.SetColWidth(sheet, "I", "I", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
