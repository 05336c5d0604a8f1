// Package extract implements the field-extraction engine for leave-and-license
// agreement text. Each field runs an ordered cascade of candidate patterns
// over the document and keeps the first match that survives validation and
// normalization; a field with no surviving match is absent, never an error.
package extract

import (
	"log"
	"strings"
	"time"
)

// Sentinel markers the upstream text-extraction collaborator emits when it
// could not produce document text. Extraction is skipped entirely for them.
const (
	SentinelExtractionError = "Error processing PDF"
	SentinelPasswordLocked  = "password protected"
)

// DefaultFieldTimeout bounds a single field's cascade evaluation. Go's
// regexp engine is linear-time, so this guards pathologically large inputs
// rather than backtracking blowups.
const DefaultFieldTimeout = 2 * time.Second

// Config controls an Extractor. Zero values select the built-in rule
// tables, the default field timeout, and the wall clock.
type Config struct {
	Tables       *Tables
	FieldTimeout time.Duration
	Now          func() time.Time
}

// Extractor runs the full extraction pipeline over one document's text.
// It is stateless per call and safe for concurrent use.
type Extractor struct {
	tables       *Tables
	fieldTimeout time.Duration
	now          func() time.Time
}

// New creates an Extractor from cfg, filling in defaults.
func New(cfg Config) *Extractor {
	e := &Extractor{
		tables:       cfg.Tables,
		fieldTimeout: cfg.FieldTimeout,
		now:          cfg.Now,
	}
	if e.tables == nil {
		e.tables = DefaultTables()
	}
	if e.fieldTimeout <= 0 {
		e.fieldTimeout = DefaultFieldTimeout
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// IsSentinel reports whether text is blank or one of the upstream failure
// markers, in which case pattern matching must be skipped.
func IsSentinel(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	if strings.Contains(text, SentinelExtractionError) {
		return true
	}
	return strings.Contains(strings.ToLower(text), SentinelPasswordLocked)
}

// ExtractAll runs every field extractor over text and compiles the result.
// Sentinel or blank input short-circuits to an all-absent result. A panic
// inside one field's cascade (a malformed injected rule, for instance) marks
// that field absent and leaves the rest of the document usable.
func (e *Extractor) ExtractAll(text string) *Result {
	res := &Result{}
	if IsSentinel(text) {
		return res
	}

	now := e.now()
	res.DocumentType = DetectDocumentType(text)

	e.guard("licensor", func(deadline time.Time) {
		res.Licensor = runCascade(text, e.licensorRules(res.DocumentType), deadline)
	})
	e.guard("licensee", func(deadline time.Time) {
		res.Licensee = runCascade(text, e.licenseeRules(res.DocumentType), deadline)
		if res.Licensee == "" {
			res.Licensee = extractLicenseeParties(text, deadline)
		}
	})
	e.guard("address", func(deadline time.Time) {
		res.Address = extractAddress(text, deadline)
	})
	e.guard("agreement_date", func(deadline time.Time) {
		res.AgreementDate = extractAgreementDate(text, now, deadline)
	})
	e.guard("term_dates", func(deadline time.Time) {
		res.StartDate, res.EndDate = extractTermDates(text, now, deadline)
	})
	e.guard("agreement_period", func(deadline time.Time) {
		res.AgreementPeriod = runCascade(text, e.tables.Period, deadline)
	})

	res.FilteredData = compileSummary(res)
	return res
}

func (e *Extractor) licensorRules(dt DocumentType) []Rule {
	if dt == DocTypeNotarized {
		return e.tables.NotarizedLicensor
	}
	return e.tables.StandardLicensor
}

func (e *Extractor) licenseeRules(dt DocumentType) []Rule {
	if dt == DocTypeNotarized {
		return e.tables.NotarizedLicensee
	}
	return e.tables.StandardLicensee
}

// guard runs one field's extraction with a deadline and converts a panic
// into field absence.
func (e *Extractor) guard(field string, fn func(deadline time.Time)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extract.Extractor: %s extraction recovered: %v", field, r)
		}
	}()
	fn(time.Now().Add(e.fieldTimeout))
}
