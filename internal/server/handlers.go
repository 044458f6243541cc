package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-parser/constants"
	"resume-parser/internal/common"
	"resume-parser/internal/entity"
	"resume-parser/internal/extract"
	"resume-parser/internal/nlp"
)

type parseRequest struct {
	Text string `json:"text" binding:"required"`
	// Entities, when present, replaces the configured provider's annotation
	// for this one call.
	Entities []nlp.Span `json:"entities,omitempty"`
}

// handleParse runs the extraction engine over raw text without persisting
// anything. Useful for trying the engine out and for NER-less smoke tests.
func (s *Server) handleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if req.Entities != nil {
		c.JSON(http.StatusOK, extract.ParseWithSpans(req.Text, req.Entities, s.engine.Now()))
		return
	}

	fields, err := s.engine.Parse(c.Request.Context(), req.Text)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// handleUpload accepts a multipart resume document, stores it under the
// upload dir, and runs the full pipeline synchronously. Re-uploading the
// same bytes dedups on content hash and re-parses the existing file.
func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	ext := constants.NormalizeExt(filepath.Ext(fh.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported file type: %q", ext)})
		return
	}

	dst := filepath.Join(s.uploadDir, uuid.New().String()+"_"+filepath.Base(fh.Filename))
	if err := s.saveUpload(fh, dst); err != nil {
		s.logger.Error("server.upload.save_failed", "path", dst, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
		return
	}

	ctx := c.Request.Context()
	fileRow, dedup, err := s.ingest.IngestPath(ctx, dst)
	if err != nil {
		s.handleError(c, err)
		return
	}

	ctx = common.WithFileID(ctx, fileRow.ID.String())
	jobID, err := s.processor.ProcessFile(ctx, fileRow.ID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"file_id": fileRow.ID,
			"job_id":  jobID,
			"dedup":   dedup,
			"error":   err.Error(),
		})
		return
	}

	rec, err := s.resumes.GetByFileID(ctx, fileRow.ID)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"file_id": fileRow.ID,
		"job_id":  jobID,
		"dedup":   dedup,
		"resume":  rec,
	})
}

func (s *Server) saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, src)
	return err
}

func (s *Server) handleList(c *gin.Context) {
	recs, err := s.resumes.List(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	if recs == nil {
		recs = []*entity.Resume{}
	}
	c.JSON(http.StatusOK, gin.H{"resumes": recs, "count": len(recs)})
}

func (s *Server) handleGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume id"})
		return
	}
	rec, err := s.resumes.GetByID(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// handleReview replaces the stored fields with the reviewer's corrected
// version and marks the row edited.
func (s *Server) handleReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume id"})
		return
	}
	var fields entity.ParsedResume
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.resumes.ApplyEdits(c.Request.Context(), id, fields)
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.logger.Info("server.review.ok", "resume_id", rec.ID)
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleExport(c *gin.Context) {
	ctx, cancel := common.WithTimeout(c.Request.Context(), exportTimeout)
	defer cancel()

	data, err := s.exporter.ExportResumesXLSX(ctx)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resumes.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

const exportTimeout = 60 * time.Second

func (s *Server) handleError(c *gin.Context, err error) {
	reqID := common.RequestIDFromContext(c.Request.Context())

	var appErr *common.AppError
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &appErr):
		s.logger.Error("server.app_error", "req_id", reqID, "code", appErr.Code, "error", appErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": appErr.Message})
	default:
		s.logger.Error("server.internal_error", "req_id", reqID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
