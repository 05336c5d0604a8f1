package extract

import (
	"regexp"
	"strings"
	"time"
)

// Rule is a single candidate pattern in a field's cascade. Cascades are
// evaluated in slice order; the first rule whose normalized capture passes
// validation wins. A rule with more than one capture group joins the
// non-empty captures with a single space before normalization.
type Rule struct {
	Key       string
	Pattern   *regexp.Regexp
	Normalize func(string) string
	Validate  func(string) bool
}

// runCascade evaluates rules in order against text and returns the first
// validated value, or "" if no rule produced one. Evaluation stops early once
// deadline passes; the field is then treated as absent rather than failing
// the whole document.
func runCascade(text string, rules []Rule, deadline time.Time) string {
	for _, r := range rules {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return ""
		}
		m := r.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := joinCaptures(m)
		if r.Normalize != nil {
			value = r.Normalize(value)
		}
		if value == "" {
			continue
		}
		if r.Validate != nil && !r.Validate(value) {
			continue
		}
		return value
	}
	return ""
}

func joinCaptures(m []string) string {
	parts := make([]string, 0, len(m)-1)
	for _, c := range m[1:] {
		c = strings.TrimSpace(c)
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
