package extract

import "regexp"

// DocumentType classifies the agreement shape. The classification is done
// once up front and selects which rule table the party extractors consult.
type DocumentType string

const (
	// DocTypeStandard is a typed or e-registered agreement where parties
	// carry courtesy titles ("Mr.", "Mrs.", ...).
	DocTypeStandard DocumentType = "standard"
	// DocTypeNotarized is a registrar/notary produced agreement; party
	// names carry no titles and the licensor block may embed a
	// power-of-attorney holder who must be skipped.
	DocTypeNotarized DocumentType = "notarized"
)

// Notarization markers. Any one of them flips the document to the notarized
// rule tables.
var notarizedMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)department\s+of\s+registration\s+and\s+stamps`),
	regexp.MustCompile(`(?i)through\s+P\.?\s*O\.?\s*A\.?\b`),
	regexp.MustCompile(`(?i)power\s+of\s+attorney`),
}

// DetectDocumentType classifies text as notarized or standard.
func DetectDocumentType(text string) DocumentType {
	for _, re := range notarizedMarkers {
		if re.MatchString(text) {
			return DocTypeNotarized
		}
	}
	return DocTypeStandard
}
