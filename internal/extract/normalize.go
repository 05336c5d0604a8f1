package extract

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe       = regexp.MustCompile(`\s+`)
	trailingArtifactRe = regexp.MustCompile(`[\s:,\-_]+$`)
	leadingConnectorRe = regexp.MustCompile(`^(?i:from|to|starting|commencing)\b[\s:]*`)
	combinedTitleRe    = regexp.MustCompile(`Mrs\./Shrimati/Miss\.\s*`)
	doubledTitleRe     = regexp.MustCompile(`^(Mr\.|Mrs\.|Ms\.|Dr\.)\s+(?:Mr|Mrs|Ms|Dr|Miss)\.?\s+`)
)

// collapseSpaces folds all whitespace runs (including newlines from wrapped
// PDF lines) into single spaces and trims the result.
func collapseSpaces(s string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}

// trimArtifacts removes trailing label punctuation left behind by a capture,
// e.g. "11 months:" or "Pune -".
func trimArtifacts(s string) string {
	return trailingArtifactRe.ReplaceAllString(s, "")
}

// trimConnectors strips stray leading connector words that period clauses
// drag into a capture ("from 01/01/2024", "commencing next month").
func trimConnectors(s string) string {
	for {
		trimmed := leadingConnectorRe.ReplaceAllString(s, "")
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

// normalizeName canonicalizes a captured party name: whitespace collapse,
// the registrar's combined "Mrs./Shrimati/Miss." title rewritten to "Mrs.",
// and a doubled bare title after it dropped ("Mrs. Mrs Kalaskar" becomes
// "Mrs. Kalaskar").
func normalizeName(s string) string {
	s = collapseSpaces(s)
	s = combinedTitleRe.ReplaceAllString(s, "Mrs. ")
	s = doubledTitleRe.ReplaceAllString(s, "$1 ")
	return trimArtifacts(s)
}

func normalizeText(s string) string {
	return trimArtifacts(collapseSpaces(s))
}

func normalizePeriod(s string) string {
	return trimArtifacts(trimConnectors(collapseSpaces(s)))
}
