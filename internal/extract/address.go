package extract

import (
	"regexp"
	"strings"
	"time"
)

// Address extraction falls through three tiers: the structured "Property
// Details" block (and its registrar cousin, the Schedule I description),
// then generic labeled patterns, then a free-text scan for a numeric-prefixed
// string containing a locality keyword.

var (
	propertyDetailsRe = regexp.MustCompile(`(?i)property\s+(?:details?|description)[^:\n]*:\s*((?:[^\n]+\n?)+?)(?:\n\s*\n|\z)`)
	scheduleRe        = regexp.MustCompile(`(?is)SCHEDULE\s+I\b.*?All\s+that\s+constructed\s+portion\s+being\s+(.*?)(?:IN\s+WITNESS\s+WHEREOF|\z)`)

	labeledAddressRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:property\s+)?address\s*:\s*([^\n]+(?:\n[^\n]+)*)`),
		regexp.MustCompile(`(?i)(?:situated\s+at|located\s+at)\s*:?\s*([^\n]+(?:\n[^\n]+)*)`),
		regexp.MustCompile(`(?i)premises\s*:\s*([^\n]+(?:\n[^\n]+)*)`),
		regexp.MustCompile(`(?i)property\s*:\s*([^\n]+(?:\n[^\n]+)*)`),
	}

	freeTextAddressRe = regexp.MustCompile(`(?i)(\d+[^\n]*(?:street|road|avenue|lane|block|sector|city|district|state|pin\s*code|pincode|pin)[^\n]*)`)
)

// Component matchers for the structured block. Each key is optional and
// matched independently; a value of "-" is the registrar's placeholder for
// an absent component.
type addressComponent struct {
	label   string
	bare    bool // emit the value without the label prefix
	pattern *regexp.Regexp
}

var addressComponents = []addressComponent{
	{label: "Flat", pattern: regexp.MustCompile(`(?i)(?:apartment\s*/\s*)?flat\s*(?:no)?\.?\s*:?\s*([^,\n]+)`)},
	{label: "Floor", pattern: regexp.MustCompile(`(?i)floor\s*(?:no)?\.?\s*:?\s*([^,\n]+)`)},
	{label: "Building", pattern: regexp.MustCompile(`(?i)building\s*(?:name)?\s*:?\s*([^,\n]+)`)},
	{label: "Sector", pattern: regexp.MustCompile(`(?i)(?:block\s*)?sector\s*:?\s*([^,\n]+)`)},
	{label: "Road", pattern: regexp.MustCompile(`(?i)road\s*:?\s*([^,\n]+)`)},
	{label: "", bare: true, pattern: regexp.MustCompile(`(?i)city\s*:?\s*([^,\n]+)`)},
	{label: "District", pattern: regexp.MustCompile(`(?i)district\s*:?\s*([^,\n]+)`)},
	{label: "PIN", pattern: regexp.MustCompile(`\b(\d{6})\b`)},
}

// parsePropertyDetails decomposes a labeled, comma-separated property blob
// into its canonical rendering: present components emitted in fixed order,
// each with a human-readable prefix ("PIN 411014" rather than "pincode:").
// Returns "" when no component is present.
func parsePropertyDetails(blob string) string {
	var parts []string
	for _, c := range addressComponents {
		m := c.pattern.FindStringSubmatch(blob)
		if m == nil {
			continue
		}
		value := trimArtifacts(collapseSpaces(m[1]))
		if strings.TrimLeft(value, "- ") == "" {
			continue
		}
		if c.bare {
			parts = append(parts, value)
		} else {
			parts = append(parts, c.label+" "+value)
		}
	}
	return strings.Join(parts, ", ")
}

func extractAddress(text string, deadline time.Time) string {
	// Tier 1: structured property block.
	if m := propertyDetailsRe.FindStringSubmatch(text); m != nil {
		if addr := parsePropertyDetails(m[1]); addr != "" {
			return addr
		}
	}
	if m := scheduleRe.FindStringSubmatch(text); m != nil {
		if addr := normalizeText(m[1]); addr != "" {
			return addr
		}
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return ""
	}

	// Tier 2: generic labeled patterns.
	for _, re := range labeledAddressRules {
		if m := re.FindStringSubmatch(text); m != nil {
			if addr := normalizeText(m[1]); addr != "" {
				return addr
			}
		}
	}

	// Tier 3: free-text scan.
	if m := freeTextAddressRe.FindStringSubmatch(text); m != nil {
		return normalizeText(m[1])
	}
	return ""
}
