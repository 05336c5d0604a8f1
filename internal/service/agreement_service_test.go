package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leasedesk/internal/config"
	"leasedesk/internal/domain"
	"leasedesk/internal/extract"
	"leasedesk/internal/port"
	"leasedesk/internal/service"
	"leasedesk/mocks"
)

const agreementText = `LEAVE AND LICENSE AGREEMENT
Licensor: Mr. John Smith
Licensee: Ms. Jane Doe
executed on 05/03/2024 for a period of 11 months
commencing from 01/04/2024 to 28/02/2025`

func newTestService(repo *mocks.MockAgreementRepo, texts *mocks.MockTextExtractor, storage *mocks.MockObjectStorage, s3cfg *config.S3Config) service.AgreementService {
	extractor := extract.New(extract.Config{
		Now: func() time.Time { return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) },
	})
	if s3cfg == nil {
		s3cfg = &config.S3Config{}
	}
	var store port.ObjectStorage
	if storage != nil {
		store = storage
	}
	return service.NewAgreementService(repo, texts, extractor, store, s3cfg)
}

func TestProcessUpload_Success(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	texts := new(mocks.MockTextExtractor)
	svc := newTestService(repo, texts, nil, nil)

	repo.On("GetByFilename", mock.Anything, "flat-101.pdf").
		Return(nil, domain.ErrAgreementNotFound)
	texts.On("ExtractText", mock.Anything, mock.Anything).
		Return(&port.TextResult{Text: agreementText, PageCount: 4}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Agreement")).
		Return(nil)

	got, err := svc.ProcessUpload(context.Background(), &service.UploadAgreementInput{
		Filename: "flat-101.pdf",
		Data:     []byte("%PDF-1.4 fake"),
	})

	require.NoError(t, err)
	assert.Equal(t, "flat-101", got.Title)
	assert.Equal(t, "flat-101.pdf", got.Filename)
	assert.Equal(t, 4, got.PageCount)
	require.NotNil(t, got.Licensor)
	assert.Equal(t, "Mr. John Smith", *got.Licensor)
	require.NotNil(t, got.Licensee)
	assert.Equal(t, "Ms. Jane Doe", *got.Licensee)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *got.StartDate)
	assert.True(t, got.HasExtractedData())
	repo.AssertExpectations(t)
	texts.AssertExpectations(t)
}

func TestProcessUpload_RejectsNonPDF(t *testing.T) {
	svc := newTestService(new(mocks.MockAgreementRepo), new(mocks.MockTextExtractor), nil, nil)

	_, err := svc.ProcessUpload(context.Background(), &service.UploadAgreementInput{
		Filename: "notes.txt",
		Data:     []byte("hello"),
	})

	assert.ErrorIs(t, err, domain.ErrNotPDF)
}

func TestProcessUpload_RejectsOversizedFile(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	texts := new(mocks.MockTextExtractor)
	svc := newTestService(repo, texts, nil, &config.S3Config{MaxFileSizeMB: 1})

	_, err := svc.ProcessUpload(context.Background(), &service.UploadAgreementInput{
		Filename: "huge.pdf",
		Data:     make([]byte, 2*1024*1024),
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestProcessUpload_DuplicateFilename(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	texts := new(mocks.MockTextExtractor)
	svc := newTestService(repo, texts, nil, nil)

	existing := &domain.Agreement{ID: uuid.New(), Filename: "flat-101.pdf"}
	repo.On("GetByFilename", mock.Anything, "flat-101.pdf").Return(existing, nil)

	_, err := svc.ProcessUpload(context.Background(), &service.UploadAgreementInput{
		Filename: "flat-101.pdf",
		Data:     []byte("%PDF"),
	})

	assert.ErrorIs(t, err, domain.ErrAgreementAlreadyExists)
	texts.AssertNotCalled(t, "ExtractText", mock.Anything, mock.Anything)
}

func TestProcessUpload_SentinelTextStoresFieldlessRecord(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	texts := new(mocks.MockTextExtractor)
	svc := newTestService(repo, texts, nil, nil)

	repo.On("GetByFilename", mock.Anything, "locked.pdf").
		Return(nil, domain.ErrAgreementNotFound)
	texts.On("ExtractText", mock.Anything, mock.Anything).
		Return(&port.TextResult{Text: "Error processing PDF: file is password protected"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Agreement")).
		Return(nil)

	got, err := svc.ProcessUpload(context.Background(), &service.UploadAgreementInput{
		Filename: "locked.pdf",
		Data:     []byte("%PDF"),
	})

	require.NoError(t, err)
	assert.False(t, got.HasExtractedData())
	assert.Nil(t, got.Licensor)
	assert.Nil(t, got.FilteredData)
}

func TestProcessUpload_ArchivesWhenConfigured(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	texts := new(mocks.MockTextExtractor)
	storage := new(mocks.MockObjectStorage)
	svc := newTestService(repo, texts, storage, &config.S3Config{
		Bucket: "agreements-archive", Region: "ap-south-1", MaxFileSizeMB: 50,
	})

	repo.On("GetByFilename", mock.Anything, "flat-101.pdf").
		Return(nil, domain.ErrAgreementNotFound)
	texts.On("ExtractText", mock.Anything, mock.Anything).
		Return(&port.TextResult{Text: agreementText, PageCount: 2}, nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://example/flat-101.pdf"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Agreement")).
		Return(nil)

	got, err := svc.ProcessUpload(context.Background(), &service.UploadAgreementInput{
		Filename: "flat-101.pdf",
		Data:     []byte("%PDF"),
	})

	require.NoError(t, err)
	require.NotNil(t, got.ArchiveKey)
	assert.Contains(t, *got.ArchiveKey, "flat-101.pdf")
	storage.AssertExpectations(t)
}

func TestReextract_RefreshesFields(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	texts := new(mocks.MockTextExtractor)
	svc := newTestService(repo, texts, nil, nil)

	id := uuid.New()
	stale := "old value"
	stored := &domain.Agreement{
		ID:       id,
		Filename: "flat-101.pdf",
		Content:  agreementText,
		Licensor: &stale,
	}
	repo.On("GetByID", mock.Anything, id).Return(stored, nil)
	repo.On("UpdateExtractedFields", mock.Anything, stored).Return(nil)

	got, err := svc.Reextract(context.Background(), id)

	require.NoError(t, err)
	require.NotNil(t, got.Licensor)
	assert.Equal(t, "Mr. John Smith", *got.Licensor)
	repo.AssertExpectations(t)
}

func TestDelete_RemovesArchivedObject(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	texts := new(mocks.MockTextExtractor)
	storage := new(mocks.MockObjectStorage)
	svc := newTestService(repo, texts, storage, &config.S3Config{Bucket: "agreements-archive"})

	id := uuid.New()
	key := "agreements/" + id.String() + "/flat-101.pdf"
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Agreement{ID: id, ArchiveKey: &key}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)
	storage.On("Delete", mock.Anything, "agreements-archive", key).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	storage.AssertExpectations(t)
}

func TestGetOriginalURL_NoArchive(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	svc := newTestService(repo, new(mocks.MockTextExtractor), nil, nil)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Agreement{ID: id}, nil)

	_, err := svc.GetOriginalURL(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrArchiveFailed)
}

func TestList_ClampsPagination(t *testing.T) {
	repo := new(mocks.MockAgreementRepo)
	svc := newTestService(repo, new(mocks.MockTextExtractor), nil, nil)

	repo.On("List", mock.Anything, 0, 20).Return([]domain.Agreement{}, 0, nil)

	_, _, err := svc.List(context.Background(), -5, 1000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
