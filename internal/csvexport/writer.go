package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"leasedesk/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (13 columns).
var columns = []string{
	"Title",
	"Filename",
	"Licensor",
	"Licensee",
	"Address",
	"Agreement Date",
	"Start Date",
	"End Date",
	"Agreement Period",
	"Document Type",
	"Page Count",
	"Uploaded At",
	"Created At",
}

// Writer wraps csv.Writer for exporting agreements as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 13-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteAgreements converts a batch of agreements to CSV rows and writes them.
func (w *Writer) WriteAgreements(agreements []domain.Agreement) error {
	for i := range agreements {
		row := agreementToRow(&agreements[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// agreementToRow converts a single agreement to a 13-element string slice.
// Fields that did not survive extraction are left empty.
func agreementToRow(a *domain.Agreement) []string {
	row := make([]string, len(columns))

	row[0] = a.Title
	row[1] = a.Filename
	row[2] = deref(a.Licensor)
	row[3] = deref(a.Licensee)
	row[4] = deref(a.Address)
	row[5] = formatDate(a.AgreementDate)
	row[6] = formatDate(a.StartDate)
	row[7] = formatDate(a.EndDate)
	row[8] = deref(a.AgreementPeriod)
	row[9] = deref(a.DocumentType)
	row[10] = strconv.Itoa(a.PageCount)
	row[11] = a.UploadedAt.Format(time.RFC3339)
	row[12] = a.CreatedAt.Format(time.RFC3339)

	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
