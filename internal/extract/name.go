package extract

import (
	"regexp"
	"strings"
	"time"
)

// Name length thresholds. Rules anchored to a label or boilerplate context
// use the relaxed minimum; bare free-text title scans have no anchoring
// context and are held to the strict one.
const (
	relaxedNameLen = 5
	strictNameLen  = 8
)

// clauseBoundary is the boilerplate token that marks the end of a party
// block. A name capture that ran into it is contaminated and rejected.
const clauseBoundary = "HEREINAFTER"

var (
	titledNameRe = regexp.MustCompile(`^(?i:Mr\.|Mrs\.|Ms\.|Dr\.|Miss)\s*[A-Z]`)
	plainNameRe  = regexp.MustCompile(`^[A-Z][A-Za-z.]+(?:\s+[A-Z][A-Za-z.]+)+$`)
)

// validTitledName reports whether a captured standard-agreement name is
// acceptable: courtesy title followed by an uppercase letter, minimum total
// length, at least a title plus one name word, every word at least two
// characters, and no clause-boundary boilerplate.
func validTitledName(name string, minLen int) bool {
	if len(name) < minLen {
		return false
	}
	if !titledNameRe.MatchString(name) {
		return false
	}
	if strings.Contains(name, clauseBoundary) {
		return false
	}
	words := strings.Fields(name)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if len(w) < 2 {
			return false
		}
	}
	return true
}

// validPlainName validates a notarized-agreement name, where the registrar
// format carries no courtesy title. Requires at least two capitalized words
// and rejects captures that swallowed numbers or boilerplate.
func validPlainName(name string) bool {
	if len(name) < relaxedNameLen {
		return false
	}
	if strings.Contains(name, clauseBoundary) {
		return false
	}
	if strings.ContainsAny(name, "0123456789") {
		return false
	}
	return plainNameRe.MatchString(name)
}

func relaxedTitled(name string) bool { return validTitledName(name, relaxedNameLen) }
func strictTitled(name string) bool  { return validTitledName(name, strictNameLen) }

// Multi-party licensee handling. When the licensee block between the
// licensor boilerplate and the licensee boilerplate enumerates several
// parties ("1) Name: ...", "2) Name: ..."), every entry is validated
// independently and the accepted names are joined in document order. One
// failed entry does not discard the rest.
var (
	licenseeSectionRe = regexp.MustCompile(`(?is)HEREINAFTER\s+called\s+.{0,80}?Licensor.*?\bAND\b(.*?)HEREINAFTER\s+called\s+.{0,80}?Licensees?`)
	licenseeEntryRe   = regexp.MustCompile(`\d+\)\s*Name\s*:\s*((?:Mr\.|Mrs\.|Ms\.|Dr\.|Miss|Mrs\./Shrimati/Miss\.)\s*[A-Z][a-zA-Z\s.]+?)\s*,\s*Age`)
)

func extractLicenseeParties(text string, deadline time.Time) string {
	m := licenseeSectionRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return ""
	}
	var names []string
	for _, entry := range licenseeEntryRe.FindAllStringSubmatch(m[1], -1) {
		name := normalizeName(entry[1])
		if validTitledName(name, relaxedNameLen) {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
