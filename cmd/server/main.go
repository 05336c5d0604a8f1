package main

import (
	"fmt"
	"log"

	"leasedesk/internal/config"
	"leasedesk/internal/extract"
	"leasedesk/internal/handler"
	"leasedesk/internal/pdftext"
	"leasedesk/internal/port"
	"leasedesk/internal/repository/postgres"
	"leasedesk/internal/router"
	"leasedesk/internal/service"
	s3storage "leasedesk/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	agreementRepo := postgres.NewAgreementRepo(db)

	// Initialize storage (optional; archiving disabled without a bucket)
	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize extraction pipeline
	texts := pdftext.New(cfg.Ingest.PdfToTextBin)
	extractor := extract.New(extract.Config{FieldTimeout: cfg.Extract.FieldTimeout})

	// Initialize services
	agreementSvc := service.NewAgreementService(agreementRepo, texts, extractor, storage, &cfg.S3)

	// Initialize handlers
	agreementH := handler.NewAgreementHandler(agreementSvc)
	exportH := handler.NewExportHandler(agreementRepo)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, agreementH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
