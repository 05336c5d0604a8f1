// Command ingest scans the configured PDF folder, runs every new agreement
// through text extraction and field extraction, stores the results, and moves
// finished files into the processed folder.
// Usage: go run ./cmd/ingest
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"leasedesk/internal/config"
	"leasedesk/internal/extract"
	"leasedesk/internal/pdftext"
	"leasedesk/internal/port"
	"leasedesk/internal/repository/postgres"
	"leasedesk/internal/service"
	s3storage "leasedesk/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	agreementRepo := postgres.NewAgreementRepo(db)
	texts := pdftext.New(cfg.Ingest.PdfToTextBin)
	extractor := extract.New(extract.Config{FieldTimeout: cfg.Extract.FieldTimeout})
	agreementSvc := service.NewAgreementService(agreementRepo, texts, extractor, storage, &cfg.S3)
	ingestSvc := service.NewIngestService(agreementSvc, &cfg.Ingest)

	summary, err := ingestSvc.Run(ctx)
	if err != nil {
		return fmt.Errorf("ingest run failed: %w", err)
	}

	log.Printf("ingest finished: processed=%d skipped=%d failed=%d",
		summary.Processed, summary.Skipped, summary.Failed)
	return nil
}
