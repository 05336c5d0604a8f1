package extract

import (
	"strings"
	"time"
)

// SummaryDateFormat renders dates in the human-readable summary and
// downstream exports ("March 05, 2024").
const SummaryDateFormat = "January 02, 2006"

// Result holds every field extracted from one agreement. String fields are
// "" and date fields nil when no pattern validated; a present value is
// always normalized, never raw capture text.
type Result struct {
	Licensor        string
	Licensee        string
	Address         string
	AgreementDate   *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	AgreementPeriod string
	DocumentType    DocumentType
	FilteredData    string
}

// Empty reports whether no extractable field (other than the document type
// tag) is present.
func (r *Result) Empty() bool {
	return r.Licensor == "" && r.Licensee == "" && r.Address == "" &&
		r.AgreementDate == nil && r.StartDate == nil && r.EndDate == nil &&
		r.AgreementPeriod == ""
}

// Fields returns the field-name to value mapping consumed by persistence
// and export. Absent fields are omitted; dates are rendered ISO.
func (r *Result) Fields() map[string]string {
	fields := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}
	put("licensor", r.Licensor)
	put("licensee", r.Licensee)
	put("address", r.Address)
	put("agreement_period", r.AgreementPeriod)
	put("filtered_data", r.FilteredData)
	if r.DocumentType != "" {
		fields["document_type"] = string(r.DocumentType)
	}
	putDate := func(key string, t *time.Time) {
		if t != nil {
			fields[key] = t.Format("2006-01-02")
		}
	}
	putDate("agreement_date", r.AgreementDate)
	putDate("start_date", r.StartDate)
	putDate("end_date", r.EndDate)
	return fields
}

// compileSummary builds the human-readable "Label: value" block from the
// present fields. Returns "" when nothing was extracted, so the summary is
// absent exactly when every other field is absent.
func compileSummary(r *Result) string {
	type entry struct {
		label string
		value string
	}
	entries := []entry{
		{"Licensor", r.Licensor},
		{"Licensee", r.Licensee},
		{"Address", r.Address},
		{"Agreement Date", formatSummaryDate(r.AgreementDate)},
		{"Start Date", formatSummaryDate(r.StartDate)},
		{"End Date", formatSummaryDate(r.EndDate)},
		{"Agreement Period", r.AgreementPeriod},
	}
	var lines []string
	for _, e := range entries {
		if e.value != "" {
			lines = append(lines, e.label+": "+e.value)
		}
	}
	return strings.Join(lines, "\n")
}

func formatSummaryDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(SummaryDateFormat)
}
