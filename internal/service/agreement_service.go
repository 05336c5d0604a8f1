package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"leasedesk/internal/config"
	"leasedesk/internal/domain"
	"leasedesk/internal/extract"
	"leasedesk/internal/port"
)

// UploadAgreementInput is the DTO for processing an uploaded PDF.
type UploadAgreementInput struct {
	Filename string
	Title    string
	Data     []byte
}

// AgreementService defines the agreement processing and query contract.
type AgreementService interface {
	ProcessUpload(ctx context.Context, input *UploadAgreementInput) (*domain.Agreement, error)
	ProcessFile(ctx context.Context, path string) (*domain.Agreement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	List(ctx context.Context, offset, limit int) ([]domain.Agreement, int, error)
	Reextract(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetOriginalURL(ctx context.Context, id uuid.UUID) (string, error)
	DownloadOriginal(ctx context.Context, id uuid.UUID) ([]byte, string, error)
}

type agreementService struct {
	repo      port.AgreementRepository
	texts     port.TextExtractor
	extractor *extract.Extractor
	storage   port.ObjectStorage
	s3cfg     *config.S3Config
}

// NewAgreementService creates a new AgreementService. storage may be nil when
// archiving is disabled.
func NewAgreementService(
	repo port.AgreementRepository,
	texts port.TextExtractor,
	extractor *extract.Extractor,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) AgreementService {
	return &agreementService{
		repo:      repo,
		texts:     texts,
		extractor: extractor,
		storage:   storage,
		s3cfg:     s3cfg,
	}
}

func (s *agreementService) ProcessUpload(ctx context.Context, input *UploadAgreementInput) (*domain.Agreement, error) {
	if !strings.EqualFold(filepath.Ext(input.Filename), ".pdf") {
		return nil, domain.ErrNotPDF
	}
	if s.s3cfg != nil && s.s3cfg.MaxFileSizeMB > 0 &&
		int64(len(input.Data)) > s.s3cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	tmp, err := os.CreateTemp("", "leasedesk-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("agreementService.ProcessUpload temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(input.Data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("agreementService.ProcessUpload temp write: %w", err)
	}
	tmp.Close()

	return s.process(ctx, tmp.Name(), input.Filename, input.Title, input.Data)
}

func (s *agreementService) ProcessFile(ctx context.Context, path string) (*domain.Agreement, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, domain.ErrNotPDF
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("agreementService.ProcessFile read: %w", err)
	}
	return s.process(ctx, path, filepath.Base(path), "", data)
}

func (s *agreementService) process(ctx context.Context, path, filename, title string, raw []byte) (*domain.Agreement, error) {
	if _, err := s.repo.GetByFilename(ctx, filename); err == nil {
		return nil, domain.ErrAgreementAlreadyExists
	}

	text, err := s.texts.ExtractText(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("agreementService.process text: %w", err)
	}

	if title == "" {
		title = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	result := s.extractor.ExtractAll(text.Text)
	now := time.Now().UTC()
	agreement := &domain.Agreement{
		ID:         uuid.New(),
		Title:      title,
		Filename:   filename,
		Content:    text.Text,
		PageCount:  text.PageCount,
		UploadedAt: now,
	}
	applyResult(agreement, result)

	if s.storage != nil && s.s3cfg != nil && s.s3cfg.Enabled() {
		key := fmt.Sprintf("agreements/%s/%s", agreement.ID, filename)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.s3cfg.Bucket,
			Key:         key,
			Body:        bytes.NewReader(raw),
			ContentType: "application/pdf",
			Size:        int64(len(raw)),
		})
		if err != nil {
			log.Printf("service.AgreementService: archiving %s failed: %v", filename, err)
		} else {
			agreement.ArchiveKey = &key
		}
	}

	if err := s.repo.Create(ctx, agreement); err != nil {
		return nil, err
	}
	return agreement, nil
}

func (s *agreementService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *agreementService) List(ctx context.Context, offset, limit int) ([]domain.Agreement, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, offset, limit)
}

// Reextract re-runs field extraction over the stored text. Used after tuning
// the pattern tables without re-uploading the PDFs.
func (s *agreementService) Reextract(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	agreement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.extractor.ExtractAll(agreement.Content)
	clearResult(agreement)
	applyResult(agreement, result)

	if err := s.repo.UpdateExtractedFields(ctx, agreement); err != nil {
		return nil, err
	}
	return agreement, nil
}

func (s *agreementService) Delete(ctx context.Context, id uuid.UUID) error {
	agreement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if agreement.ArchiveKey != nil && s.storage != nil && s.s3cfg != nil && s.s3cfg.Enabled() {
		if err := s.storage.Delete(ctx, s.s3cfg.Bucket, *agreement.ArchiveKey); err != nil {
			log.Printf("service.AgreementService: deleting archive %s failed: %v", *agreement.ArchiveKey, err)
		}
	}
	return nil
}

func (s *agreementService) GetOriginalURL(ctx context.Context, id uuid.UUID) (string, error) {
	agreement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if agreement.ArchiveKey == nil || s.storage == nil || s.s3cfg == nil || !s.s3cfg.Enabled() {
		return "", domain.ErrArchiveFailed
	}
	return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, *agreement.ArchiveKey, s.s3cfg.PresignExpiry)
}

func (s *agreementService) DownloadOriginal(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	agreement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if agreement.ArchiveKey == nil || s.storage == nil || s.s3cfg == nil || !s.s3cfg.Enabled() {
		return nil, "", domain.ErrArchiveFailed
	}
	data, err := s.storage.Download(ctx, s.s3cfg.Bucket, *agreement.ArchiveKey)
	if err != nil {
		return nil, "", err
	}
	return data, agreement.Filename, nil
}

func applyResult(a *domain.Agreement, r *extract.Result) {
	setIfPresent := func(dst **string, v string) {
		if v != "" {
			s := v
			*dst = &s
		}
	}
	setIfPresent(&a.Licensor, r.Licensor)
	setIfPresent(&a.Licensee, r.Licensee)
	setIfPresent(&a.Address, r.Address)
	setIfPresent(&a.AgreementPeriod, r.AgreementPeriod)
	setIfPresent(&a.FilteredData, r.FilteredData)
	if r.DocumentType != "" {
		t := string(r.DocumentType)
		a.DocumentType = &t
	}
	if r.AgreementDate != nil {
		d := *r.AgreementDate
		a.AgreementDate = &d
	}
	if r.StartDate != nil {
		d := *r.StartDate
		a.StartDate = &d
	}
	if r.EndDate != nil {
		d := *r.EndDate
		a.EndDate = &d
	}
}

func clearResult(a *domain.Agreement) {
	a.Licensor = nil
	a.Licensee = nil
	a.Address = nil
	a.AgreementDate = nil
	a.StartDate = nil
	a.EndDate = nil
	a.AgreementPeriod = nil
	a.DocumentType = nil
	a.FilteredData = nil
}
