package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidTitledName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		minLen int
		want   bool
	}{
		{"titled two words", "Mr. John Smith", relaxedNameLen, true},
		{"no space after title", "Mr.GADKARI SANDEEP SATISH", relaxedNameLen, true},
		{"miss title", "Miss Kavita Sharma", relaxedNameLen, true},
		{"too short", "Mr.A", relaxedNameLen, false},
		{"single word", "Mr.Ramesh", relaxedNameLen, false},
		{"one-letter word", "Mr. John S X", relaxedNameLen, false},
		{"boilerplate contamination", "Mr. John HEREINAFTER", relaxedNameLen, false},
		{"no title", "John Smith", relaxedNameLen, false},
		{"below strict minimum", "Mr. Jo", strictNameLen, false},
		{"meets strict minimum", "Mr. Johnson", strictNameLen, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validTitledName(tc.input, tc.minLen))
		})
	}
}

func TestValidPlainName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"two capitalized words", "Nitin Bhalla", true},
		{"three words", "Rajat Kumar Saini", true},
		{"initial with dot", "R. Saini", true},
		{"single word", "Nitin", false},
		{"lowercase first word", "nitin Bhalla", false},
		{"contains digits", "Flat 402 Saini", false},
		{"boilerplate contamination", "Nitin HEREINAFTER Bhalla", false},
		{"too short", "Al B", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validPlainName(tc.input))
		})
	}
}

func TestExtractLicenseeParties(t *testing.T) {
	t.Run("all entries valid", func(t *testing.T) {
		text := `HEREINAFTER called the Licensor AND
1) Name: Miss Kavita Sharma, Age 24
2) Name: Miss Anita Deshmukh, Age 27
HEREINAFTER called the Licensees`

		got := extractLicenseeParties(text, time.Time{})
		assert.Equal(t, "Miss Kavita Sharma, Miss Anita Deshmukh", got)
	})

	t.Run("combined title entry is canonicalized", func(t *testing.T) {
		text := `HEREINAFTER called the Licensor AND
1) Name: Mrs./Shrimati/Miss. Vaishali Kalaskar, Age 39
HEREINAFTER called the Licensee`

		got := extractLicenseeParties(text, time.Time{})
		assert.Equal(t, "Mrs. Vaishali Kalaskar", got)
	})

	t.Run("invalid entry is dropped, not fatal", func(t *testing.T) {
		text := `HEREINAFTER called the Licensor AND
1) Name: Miss K Lata, Age 22
2) Name: Miss Kavita Sharma, Age 24
HEREINAFTER called the Licensees`

		got := extractLicenseeParties(text, time.Time{})
		assert.Equal(t, "Miss Kavita Sharma", got)
	})

	t.Run("no licensee section", func(t *testing.T) {
		assert.Empty(t, extractLicenseeParties("no parties here", time.Time{}))
	})
}

func TestValidatedNamesMatchTitleShape(t *testing.T) {
	// Every value the standard cascades emit starts with a courtesy title
	// followed by an uppercase letter.
	texts := []string{
		`Licensor: Mr. John Smith`,
		`Mr.GADKARI SANDEEP SATISH (hereinafter called "the Licensor")`,
		`1) Name: Mrs. Vaishali Kalaskar, Age 39`,
	}
	e := newTestExtractor()
	for _, text := range texts {
		res := e.ExtractAll(text)
		if res.Licensor == "" {
			t.Fatalf("no licensor extracted from %q", text)
		}
		assert.Regexp(t, `^(?:Mr\.|Mrs\.|Ms\.|Dr\.|Miss)\s*[A-Z]`, res.Licensor)
		assert.NotContains(t, res.Licensor, clauseBoundary)
	}
}
