package port

import (
	"context"

	"github.com/google/uuid"

	"leasedesk/internal/domain"
)

// AgreementRepository is the persistence contract for agreements.
type AgreementRepository interface {
	Create(ctx context.Context, a *domain.Agreement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	GetByFilename(ctx context.Context, filename string) (*domain.Agreement, error)
	List(ctx context.Context, offset, limit int) ([]domain.Agreement, int, error)
	ListAll(ctx context.Context) ([]domain.Agreement, error)
	UpdateExtractedFields(ctx context.Context, a *domain.Agreement) error
	Delete(ctx context.Context, id uuid.UUID) error
}
