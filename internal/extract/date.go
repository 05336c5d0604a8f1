package extract

import (
	"regexp"
	"strings"
	"time"
)

// DateLayouts are the grammars attempted, in order, when parsing a
// date-shaped substring. Mirrors the formats seen across scanned agreements:
// numeric day-first with slash or dash, ISO, and spelled-out month names.
var DateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
	"02 January 2006",
	"2 January 2006",
	"January 2, 2006",
	"02/01/06",
	"2-1-06",
}

// ParseDate attempts each layout in order and returns the first calendar
// date that parses. Purely syntactic; plausibility is the caller's concern.
func ParseDate(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// plausibleYear gates parsed dates to [1990, current year + 10]. Scanned
// agreements routinely misread digits; a 1923 or 3035 date is an artifact,
// not a term.
func plausibleYear(t time.Time, now time.Time) bool {
	y := t.Year()
	return y >= 1990 && y <= now.Year()+10
}

const numericDate = `\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`

// Agreement-date cascade: labeled dates first, then execution clauses, then
// the ceremonial "this Nth day of Month, YYYY" form. Each candidate is
// parsed and year-gated before it is accepted; a failed parse falls through
// to the next rule.
var agreementDateRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:agreement\s+)?date\s*:?\s*(` + numericDate + `)`),
	regexp.MustCompile(`(?i)(?:executed\s+on|signed\s+on|dated)\s*:?\s*(` + numericDate + `)`),
	regexp.MustCompile(`(?i)this\s+(\d{1,2})\w{0,2}\s+day\s+of\s+(\w+)[,\s]+(\d{4})`),
}

// anyDateRe is the last-resort scan for any date-shaped substring.
var anyDateRe = regexp.MustCompile(`(` + numericDate + `)`)

func extractAgreementDate(text string, now time.Time, deadline time.Time) *time.Time {
	for _, re := range agreementDateRules {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil
		}
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := m[1]
		if len(m) == 4 {
			// "this 5th day of March, 2024" -> "5 March 2024"
			candidate = m[1] + " " + m[2] + " " + m[3]
		}
		if t, ok := ParseDate(candidate, DateLayouts); ok && plausibleYear(t, now) {
			return &t
		}
	}
	if m := anyDateRe.FindStringSubmatch(text); m != nil {
		if t, ok := ParseDate(m[1], DateLayouts); ok && plausibleYear(t, now) {
			return &t
		}
	}
	return nil
}

// Term-date cascade: a single clause that carries both ends of the license
// term. "commencing from X and ending on Y" is the registrar phrasing; the
// plain "from X to Y" form covers older typed agreements.
var termDateRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)commencing\s+from\s*:?\s*(` + numericDate + `)\s*(?:and\s+ending\s+on|to|till|up\s*to|until)\s*:?\s*(` + numericDate + `)`),
	regexp.MustCompile(`(?i)from\s+(` + numericDate + `)\s+(?:to|till|up\s*to|until)\s+(` + numericDate + `)`),
	regexp.MustCompile(`(?i)(?:w\.?e\.?f\.?|with\s+effect\s+from)\s*:?\s*(` + numericDate + `)\s*(?:to|till|until)\s*(` + numericDate + `)`),
}

func extractTermDates(text string, now time.Time, deadline time.Time) (start, end *time.Time) {
	for _, re := range termDateRules {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil, nil
		}
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		s, okS := ParseDate(m[1], DateLayouts)
		e, okE := ParseDate(m[2], DateLayouts)
		if !okS || !okE || !plausibleYear(s, now) || !plausibleYear(e, now) {
			continue
		}
		return &s, &e
	}
	return nil, nil
}
