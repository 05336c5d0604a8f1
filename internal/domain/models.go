package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agreement is a processed leave-and-license agreement document. The
// extracted fields mirror the extraction core's contract surface: each is
// nullable and absent when no pattern validated.
type Agreement struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Filename  string    `db:"filename" json:"filename"`
	Content   string    `db:"content" json:"-"`
	PageCount int       `db:"page_count" json:"page_count"`

	Licensor        *string    `db:"licensor" json:"licensor,omitempty"`
	Licensee        *string    `db:"licensee" json:"licensee,omitempty"`
	Address         *string    `db:"address" json:"address,omitempty"`
	AgreementDate   *time.Time `db:"agreement_date" json:"agreement_date,omitempty"`
	StartDate       *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate         *time.Time `db:"end_date" json:"end_date,omitempty"`
	AgreementPeriod *string    `db:"agreement_period" json:"agreement_period,omitempty"`
	DocumentType    *string    `db:"document_type" json:"document_type,omitempty"`
	FilteredData    *string    `db:"filtered_data" json:"filtered_data,omitempty"`

	ArchiveKey *string `db:"archive_key" json:"archive_key,omitempty"`

	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// HasExtractedData reports whether at least one field survived extraction.
func (a *Agreement) HasExtractedData() bool {
	return a.Licensor != nil || a.Licensee != nil || a.Address != nil ||
		a.AgreementDate != nil || a.StartDate != nil || a.EndDate != nil ||
		a.AgreementPeriod != nil
}
