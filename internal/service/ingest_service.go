package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"leasedesk/internal/config"
	"leasedesk/internal/domain"
)

// IngestSummary reports the outcome of one folder scan.
type IngestSummary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// IngestService defines the batch folder-processing contract.
type IngestService interface {
	Run(ctx context.Context) (*IngestSummary, error)
}

type ingestService struct {
	agreements AgreementService
	cfg        *config.IngestConfig
}

// NewIngestService creates a new IngestService.
func NewIngestService(agreements AgreementService, cfg *config.IngestConfig) IngestService {
	return &ingestService{agreements: agreements, cfg: cfg}
}

// Run scans the configured folder, processes every PDF through the extraction
// pipeline with a bounded worker pool, and moves finished files into the
// processed folder. Files already known by filename are skipped.
func (s *ingestService) Run(ctx context.Context) (*IngestSummary, error) {
	entries, err := os.ReadDir(s.cfg.Folder)
	if err != nil {
		return nil, fmt.Errorf("ingestService.Run reading %s: %w", s.cfg.Folder, err)
	}
	if err := os.MkdirAll(s.cfg.ProcessedFolder, 0o755); err != nil {
		return nil, fmt.Errorf("ingestService.Run creating %s: %w", s.cfg.ProcessedFolder, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(s.cfg.Folder, entry.Name()))
	}

	concurrency := s.cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu      sync.Mutex
		summary IngestSummary
		wg      sync.WaitGroup
		jobs    = make(chan string)
	)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				s.processOne(ctx, path, &mu, &summary)
			}
		}()
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return &summary, ctx.Err()
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	log.Printf("service.IngestService: processed=%d skipped=%d failed=%d",
		summary.Processed, summary.Skipped, summary.Failed)
	return &summary, nil
}

func (s *ingestService) processOne(ctx context.Context, path string, mu *sync.Mutex, summary *IngestSummary) {
	_, err := s.agreements.ProcessFile(ctx, path)
	mu.Lock()
	defer mu.Unlock()

	switch {
	case err == nil:
		summary.Processed++
	case errors.Is(err, domain.ErrAgreementAlreadyExists):
		log.Printf("service.IngestService: skipping %s: already processed", path)
		summary.Skipped++
		return
	default:
		log.Printf("service.IngestService: processing %s failed: %v", path, err)
		summary.Failed++
		return
	}

	dest := filepath.Join(s.cfg.ProcessedFolder, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		log.Printf("service.IngestService: moving %s to %s failed: %v", path, dest, err)
	}
}
