package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"resume-parser/internal/common"
	"resume-parser/internal/export"
	"resume-parser/internal/extract"
	"resume-parser/internal/ingest"
	"resume-parser/internal/nlp"
	"resume-parser/internal/pipeline"
	"resume-parser/internal/pipeline/parsefields"
	"resume-parser/internal/pipeline/textextract"
	"resume-parser/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem  = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir    = flag.String("dir", "", "directory to process resumes from (required)")
		out    = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		dsn    = flag.String("dsn", "", "database DSN (overrides DB_URL)")
		nerURL = flag.String("ner-url", "", "entity-recognition sidecar URL (overrides NER_URL)")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "resumes.xlsx")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ""
	}
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}
	if *nerURL != "" {
		cfg.NER.URL = *nerURL
	}

	// Initialize database
	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	if err := repository.Migrate(ctx, db, logger); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Entity provider (graceful if missing)
	var provider nlp.EntityProvider
	if cfg.NER.URL != "" {
		provider = nlp.NewHTTPProvider(cfg.NER.URL, cfg.NER.Timeout, logger)
		logger.Info("entity provider initialized", "url", cfg.NER.URL)
	} else {
		logger.Warn("NER URL not configured, name/company extraction will be limited")
	}

	// Wire repositories
	filesRepo := repository.NewFileRepository(db, logger)
	jobsRepo := repository.NewJobRepository(db, logger)
	resumesRepo := repository.NewResumeRepository(db, logger)

	// Setup processor
	engine := extract.NewEngine(provider, logger)
	processor := pipeline.NewProcessor(logger,
		textextract.NewPipeline(logger, filesRepo, jobsRepo),
		parsefields.NewPipeline(logger, jobsRepo, resumesRepo, engine))

	// Setup ingestor
	ingestor := ingest.NewUsecase(filesRepo)

	// Ingest directory
	logger.Info("starting ingestion", "dir", *dir)
	files, err := ingestor.WalkDir(ctx, *dir)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete", "files_ingested", len(files))

	// Process each ingested file
	processed := 0
	failures := 0

	for _, f := range files {
		logger.Info("processing file", "file_id", f.ID, "path", f.SourcePath)
		if _, err := processor.ProcessFile(ctx, f.ID); err != nil {
			logger.Error("failed to process file", "file_id", f.ID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(resumesRepo, filesRepo, logger)

	xlsxBytes, err := exportService.ExportResumesXLSX(ctx)
	if err != nil {
		logger.Error("failed to export resumes", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch processing complete",
		"files_ingested", len(files),
		"files_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(files))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
