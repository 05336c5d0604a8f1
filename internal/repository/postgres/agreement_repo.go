package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"leasedesk/internal/domain"
	"leasedesk/internal/port"
)

type agreementRepo struct {
	db *sqlx.DB
}

// NewAgreementRepo creates a new PostgreSQL-backed AgreementRepository.
func NewAgreementRepo(db *sqlx.DB) port.AgreementRepository {
	return &agreementRepo{db: db}
}

func (r *agreementRepo) Create(ctx context.Context, a *domain.Agreement) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `INSERT INTO agreements (
		id, title, filename, content, page_count,
		licensor, licensee, address,
		agreement_date, start_date, end_date, agreement_period,
		document_type, filtered_data, archive_key,
		uploaded_at, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8,
		$9, $10, $11, $12,
		$13, $14, $15,
		$16, $17, $18
	)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Filename, a.Content, a.PageCount,
		a.Licensor, a.Licensee, a.Address,
		a.AgreementDate, a.StartDate, a.EndDate, a.AgreementPeriod,
		a.DocumentType, a.FilteredData, a.ArchiveKey,
		a.UploadedAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "filename") {
			return domain.ErrAgreementAlreadyExists
		}
		return fmt.Errorf("agreementRepo.Create: %w", err)
	}
	return nil
}

func (r *agreementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	var a domain.Agreement
	err := r.db.GetContext(ctx, &a,
		"SELECT * FROM agreements WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("agreementRepo.GetByID: %w", err)
	}
	return &a, nil
}

func (r *agreementRepo) GetByFilename(ctx context.Context, filename string) (*domain.Agreement, error) {
	var a domain.Agreement
	err := r.db.GetContext(ctx, &a,
		"SELECT * FROM agreements WHERE filename = $1", filename)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("agreementRepo.GetByFilename: %w", err)
	}
	return &a, nil
}

func (r *agreementRepo) List(ctx context.Context, offset, limit int) ([]domain.Agreement, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM agreements")
	if err != nil {
		return nil, 0, fmt.Errorf("agreementRepo.List count: %w", err)
	}

	var items []domain.Agreement
	err = r.db.SelectContext(ctx, &items,
		`SELECT * FROM agreements ORDER BY uploaded_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("agreementRepo.List: %w", err)
	}
	return items, total, nil
}

func (r *agreementRepo) ListAll(ctx context.Context) ([]domain.Agreement, error) {
	var items []domain.Agreement
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM agreements ORDER BY uploaded_at DESC")
	if err != nil {
		return nil, fmt.Errorf("agreementRepo.ListAll: %w", err)
	}
	return items, nil
}

func (r *agreementRepo) UpdateExtractedFields(ctx context.Context, a *domain.Agreement) error {
	a.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE agreements SET
			licensor = $1, licensee = $2, address = $3,
			agreement_date = $4, start_date = $5, end_date = $6,
			agreement_period = $7, document_type = $8, filtered_data = $9,
			updated_at = $10
		 WHERE id = $11`,
		a.Licensor, a.Licensee, a.Address,
		a.AgreementDate, a.StartDate, a.EndDate,
		a.AgreementPeriod, a.DocumentType, a.FilteredData,
		a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("agreementRepo.UpdateExtractedFields: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAgreementNotFound
	}
	return nil
}

func (r *agreementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM agreements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("agreementRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAgreementNotFound
	}
	return nil
}
