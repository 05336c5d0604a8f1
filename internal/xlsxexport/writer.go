package xlsxexport

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"leasedesk/internal/domain"
)

const (
	dataSheet    = "Agreements"
	summarySheet = "Extraction Summary"
)

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
}

// Write renders a batch of agreements into an XLSX workbook with a data sheet
// and a per-field extraction coverage sheet, writing the workbook to w.
func Write(w io.Writer, agreements []domain.Agreement) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), dataSheet); err != nil {
		return fmt.Errorf("xlsxexport: renaming sheet: %w", err)
	}

	if err := writeData(f, agreements); err != nil {
		return err
	}
	if err := writeSummary(f, agreements); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: writing workbook: %w", err)
	}
	return nil
}

func writeData(f *excelize.File, agreements []domain.Agreement) error {
	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(dataSheet, cell, name); err != nil {
			return fmt.Errorf("xlsxexport: header cell %s: %w", cell, err)
		}
	}

	for rowIdx := range agreements {
		a := &agreements[rowIdx]
		values := []string{
			a.Title,
			a.Filename,
			deref(a.Licensor),
			deref(a.Licensee),
			deref(a.Address),
			formatDate(a.AgreementDate),
			formatDate(a.StartDate),
			formatDate(a.EndDate),
			deref(a.AgreementPeriod),
			deref(a.DocumentType),
			strconv.Itoa(a.PageCount),
			a.UploadedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return fmt.Errorf("xlsxexport: data cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// writeSummary adds a sheet counting, per field, how many agreements carry an
// extracted value.
func writeSummary(f *excelize.File, agreements []domain.Agreement) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("xlsxexport: creating summary sheet: %w", err)
	}

	counts := []struct {
		field string
		count int
	}{
		{"Licensor", countSet(agreements, func(a *domain.Agreement) bool { return a.Licensor != nil })},
		{"Licensee", countSet(agreements, func(a *domain.Agreement) bool { return a.Licensee != nil })},
		{"Address", countSet(agreements, func(a *domain.Agreement) bool { return a.Address != nil })},
		{"Agreement Date", countSet(agreements, func(a *domain.Agreement) bool { return a.AgreementDate != nil })},
		{"Start Date", countSet(agreements, func(a *domain.Agreement) bool { return a.StartDate != nil })},
		{"End Date", countSet(agreements, func(a *domain.Agreement) bool { return a.EndDate != nil })},
		{"Agreement Period", countSet(agreements, func(a *domain.Agreement) bool { return a.AgreementPeriod != nil })},
	}

	headers := []string{"Field", "Extracted", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return fmt.Errorf("xlsxexport: summary header %s: %w", cell, err)
		}
	}
	for i, c := range counts {
		row := i + 2
		cells := []interface{}{c.field, c.count, len(agreements)}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("xlsxexport: summary cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func countSet(agreements []domain.Agreement, pred func(*domain.Agreement) bool) int {
	n := 0
	for i := range agreements {
		if pred(&agreements[i]) {
			n++
		}
	}
	return n
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
