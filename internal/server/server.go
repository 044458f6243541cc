package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-parser/internal/common"
	"resume-parser/internal/export"
	"resume-parser/internal/extract"
	"resume-parser/internal/ingest"
	"resume-parser/internal/pipeline"
	"resume-parser/internal/repository"
)

// Server holds the state for the REST API server.
type Server struct {
	engine    *extract.Engine
	ingest    *ingest.Usecase
	processor *pipeline.Processor
	resumes   repository.ResumeRepository
	exporter  *export.Service
	uploadDir string
	logger    *slog.Logger
	router    *gin.Engine
}

func NewServer(
	engine *extract.Engine,
	ing *ingest.Usecase,
	processor *pipeline.Processor,
	resumes repository.ResumeRepository,
	exporter *export.Service,
	uploadDir string,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	r := gin.Default()
	s := &Server{
		engine:    engine,
		ingest:    ing,
		processor: processor,
		resumes:   resumes,
		exporter:  exporter,
		uploadDir: uploadDir,
		logger:    logger,
		router:    r,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for embedding into an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestID)
	s.router.GET("/health", s.healthCheck)
	s.router.POST("/v1/parse", s.handleParse)
	s.router.POST("/v1/resumes", s.handleUpload)
	s.router.GET("/v1/resumes", s.handleList)
	s.router.GET("/v1/resumes/export", s.handleExport)
	s.router.GET("/v1/resumes/:id", s.handleGet)
	s.router.PUT("/v1/resumes/:id", s.handleReview)
}

// requestID tags each request with an ID (client-supplied or generated) so
// log lines across the pipeline stages correlate.
func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
	}
	c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), id))
	c.Header("X-Request-ID", id)
	c.Next()
}

// Health check
func (s *Server) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}
