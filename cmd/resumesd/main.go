package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"resume-parser/internal/common"
	"resume-parser/internal/export"
	"resume-parser/internal/extract"
	"resume-parser/internal/ingest"
	"resume-parser/internal/nlp"
	"resume-parser/internal/pipeline"
	"resume-parser/internal/pipeline/parsefields"
	"resume-parser/internal/pipeline/textextract"
	"resume-parser/internal/repository"
	"resume-parser/internal/server"
)

func main() {
	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Env (.env is optional; real deployments set the environment directly)
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Database
	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	if err := repository.Migrate(ctx, db, logger); err != nil {
		logger.Error("migrating database", "error", err)
		os.Exit(1)
	}
	if err := repository.HealthCheck(ctx, db, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("DB health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("DB health OK")

	// Entity provider (graceful if the NER sidecar is not configured)
	var provider nlp.EntityProvider
	if cfg.NER.URL != "" {
		provider = nlp.NewHTTPProvider(cfg.NER.URL, cfg.NER.Timeout, logger)
		logger.Info("entity provider initialized", "url", cfg.NER.URL)
	} else {
		logger.Warn("NER_URL not configured, entity-based extraction will be limited")
	}

	// Wire repositories and pipelines
	filesRepo := repository.NewFileRepository(db, logger)
	jobsRepo := repository.NewJobRepository(db, logger)
	resumesRepo := repository.NewResumeRepository(db, logger)

	engine := extract.NewEngine(provider, logger)
	ingestor := ingest.NewUsecase(filesRepo)
	processor := pipeline.NewProcessor(logger,
		textextract.NewPipeline(logger, filesRepo, jobsRepo),
		parsefields.NewPipeline(logger, jobsRepo, resumesRepo, engine))
	exporter := export.NewService(resumesRepo, filesRepo, logger)

	srv := server.NewServer(engine, ingestor, processor, resumesRepo, exporter, cfg.Ingest.UploadDir, logger)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("HTTP serving", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
