package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePropertyDetails(t *testing.T) {
	t.Run("full block", func(t *testing.T) {
		blob := "Apartment/Flat No: A-502, Floor No: 5, Building Name: Sunshine Towers, " +
			"Road: Baner Road, City: Pune, District: Pune, Pin Code: 411045"

		got := parsePropertyDetails(blob)
		assert.Equal(t,
			"Flat A-502, Floor 5, Building Sunshine Towers, Road Baner Road, Pune, District Pune, PIN 411045",
			got)
	})

	t.Run("placeholder components skipped", func(t *testing.T) {
		blob := "Flat No: 101, Floor No: -, Building Name: Rosewood, City: Mumbai"

		got := parsePropertyDetails(blob)
		assert.Equal(t, "Flat 101, Building Rosewood, Mumbai", got)
	})

	t.Run("nothing usable", func(t *testing.T) {
		assert.Empty(t, parsePropertyDetails("no address parts here"))
	})
}

func TestExtractAddress(t *testing.T) {
	t.Run("structured block wins", func(t *testing.T) {
		text := "Property Details:\nFlat No: 101, Floor No: 1, Building Name: Rosewood, City: Pune, Pin Code: 411001\n\n" +
			"Property Address: something less specific"

		got := extractAddress(text, time.Time{})
		assert.Equal(t, "Flat 101, Floor 1, Building Rosewood, Pune, PIN 411001", got)
	})

	t.Run("schedule description", func(t *testing.T) {
		text := `SCHEDULE I
All that constructed portion being Flat No. 101, First Floor,
Rosewood Apartments, Baner Road, Pune 411045
IN WITNESS WHEREOF the parties have signed`

		got := extractAddress(text, time.Time{})
		assert.Equal(t,
			"Flat No. 101, First Floor, Rosewood Apartments, Baner Road, Pune 411045",
			got)
	})

	t.Run("labeled address", func(t *testing.T) {
		got := extractAddress("Property Address: Flat 12, Green Park, Pune", time.Time{})
		assert.Equal(t, "Flat 12, Green Park, Pune", got)
	})

	t.Run("situated at", func(t *testing.T) {
		got := extractAddress("the premises situated at 14 MG Road, Pune", time.Time{})
		assert.Equal(t, "14 MG Road, Pune", got)
	})

	t.Run("free text fallback", func(t *testing.T) {
		got := extractAddress("monthly rent for 221 Shivaji Road\npayable in advance", time.Time{})
		assert.Equal(t, "221 Shivaji Road", got)
	})

	t.Run("no address", func(t *testing.T) {
		assert.Empty(t, extractAddress("nothing locatable in this text", time.Time{}))
	})
}
