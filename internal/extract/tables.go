package extract

import "regexp"

// titledAlt matches the courtesy titles that open a standard-agreement name.
// The registrar's combined "Mrs./Shrimati/Miss." form comes first so it wins
// over its "Mrs." prefix. Bare "Miss" is deliberately absent here: single-name
// rules must not fire on the first entry of a multi-party licensee block,
// which is collected wholesale by the multi-party fallback instead.
const titledAlt = `(?:Mrs\./Shrimati/Miss\.|Mr\.|Mrs\.|Ms\.|Dr\.)`

// Tables holds the per-field rule cascades the extractor consults. The
// default tables encode the known agreement shapes; tests inject reduced
// tables to exercise rules in isolation.
type Tables struct {
	StandardLicensor  []Rule
	StandardLicensee  []Rule
	NotarizedLicensor []Rule
	NotarizedLicensee []Rule
	Period            []Rule
}

// DefaultTables returns the built-in rule cascades, most specific first.
func DefaultTables() *Tables {
	return &Tables{
		StandardLicensor: []Rule{
			{
				Key:       "licensor-label",
				Pattern:   regexp.MustCompile(`(?i:licensor)\s*:\s*(` + titledAlt + `[ \t]?[A-Z][a-zA-Z.]*(?:[ \t][A-Z][a-zA-Z.]*)*)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "called-licensor",
				Pattern:   regexp.MustCompile(`(` + titledAlt + `\s*[A-Z][A-Za-z\s]*?)\s*\([^)]*?[Cc]alled\s*['"]?[^'")]{0,40}?[Ll]icensor`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "numbered-name",
				Pattern:   regexp.MustCompile(`1\)\s*(?i:Name)\s*:\s*(` + titledAlt + `\s*[A-Z][a-zA-Z\s.]+?)\s*,\s*(?i:Age)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "name-label",
				Pattern:   regexp.MustCompile(`(?i:Name)\s*:\s*(` + titledAlt + `\s*[A-Z][a-zA-Z\s.]+?)(?:\s*,|\s+(?i:Age)|\s+HEREINAFTER)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "owner-label",
				Pattern:   regexp.MustCompile(`(?i)(?:owner|landlord|lessor)\s*:[ \t]*([^\n]+)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "free-scan",
				Pattern:   regexp.MustCompile(`(` + titledAlt + `\s*[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)+)`),
				Normalize: normalizeName,
				Validate:  strictTitled,
			},
		},
		StandardLicensee: []Rule{
			{
				Key:       "licensee-label",
				Pattern:   regexp.MustCompile(`(?i:licensee)\s*:\s*(` + titledAlt + `[ \t]?[A-Z][a-zA-Z.]*(?:[ \t][A-Z][a-zA-Z.]*)*)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "called-licensee",
				Pattern:   regexp.MustCompile(`(` + titledAlt + `\s*[A-Z][A-Za-z\s]*?)\s*\([^)]*?[Cc]alled\s*['"]?[^'")]{0,40}?[Ll]icensee`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "after-and-name",
				Pattern:   regexp.MustCompile(`(?s)HEREINAFTER.{0,400}?[Cc]alled.{0,80}?[Ll]icensor.*?\bAND\b.*?(?i:Name)\s*:\s*(` + titledAlt + `\s*[A-Z][a-zA-Z\s.]+?)(?:\s*,|\s+(?i:Age)|\s+HEREINAFTER)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "and-numbered-name",
				Pattern:   regexp.MustCompile(`(?s)\bAND\b\s*1\)\s*(?i:Name)\s*:\s*(` + titledAlt + `\s*[A-Z][a-zA-Z\s.]+?)\s*,\s*(?i:Age)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
			{
				Key:       "tenant-label",
				Pattern:   regexp.MustCompile(`(?i)(?:tenant|lessee|occupant)\s*:[ \t]*([^\n]+)`),
				Normalize: normalizeName,
				Validate:  relaxedTitled,
			},
		},
		NotarizedLicensor: []Rule{
			{
				Key:       "between-first-party",
				Pattern:   regexp.MustCompile(`(?s)(?i:Between)\s*,?.{0,20}?1\)\s*([A-Z][A-Za-z .]{3,60}?)\s*,\s*(?i:PAN|Age)`),
				Normalize: normalizeText,
				Validate:  validPlainName,
			},
			{
				Key:       "first-numbered-party",
				Pattern:   regexp.MustCompile(`1\)\s*([A-Z][A-Za-z .]{3,60}?)\s*,\s*(?i:PAN|Age)`),
				Normalize: normalizeText,
				Validate:  validPlainName,
			},
		},
		NotarizedLicensee: []Rule{
			{
				Key:       "after-licensor-and",
				Pattern:   regexp.MustCompile(`(?s)HEREINAFTER\s+[Cc]alled\s+.{0,40}?[Ll]icensor.*?\bAND\b.{0,20}?1\)\s*([A-Z][A-Za-z .]{3,60}?)\s*,\s*(?i:PAN|Age)`),
				Normalize: normalizeText,
				Validate:  validPlainName,
			},
			{
				Key:       "and-first-party",
				Pattern:   regexp.MustCompile(`(?s)\bAND\b\s*.{0,20}?1\)\s*([A-Z][A-Za-z .]{3,60}?)\s*,\s*(?i:PAN|Age)`),
				Normalize: normalizeText,
				Validate:  validPlainName,
			},
		},
		Period: []Rule{
			{
				Key:       "period-label",
				Pattern:   regexp.MustCompile(`(?i)(?:period|duration|term)\s*:\s*([^\n]+)`),
				Normalize: normalizePeriod,
			},
			{
				Key:       "for-a-period-of",
				Pattern:   regexp.MustCompile(`(?i)for\s+a\s+period\s+of\s+(\d+\s+(?:months?|years?|days?))`),
				Normalize: normalizePeriod,
			},
			{
				Key:       "bare-duration",
				Pattern:   regexp.MustCompile(`(?i)\b(\d+\s+(?:months?|years?|days?))\b`),
				Normalize: normalizePeriod,
			},
			{
				Key:       "commencing-from",
				Pattern:   regexp.MustCompile(`(?i)(?:commencing\s+from|starting\s+from)\s*:?\s*([^\n]+)`),
				Normalize: normalizePeriod,
			},
			{
				Key:       "valid-for",
				Pattern:   regexp.MustCompile(`(?i)(?:valid\s+for|effective\s+for)\s*:?\s*([^\n]+)`),
				Normalize: normalizePeriod,
			},
		},
	}
}
