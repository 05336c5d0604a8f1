package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"05/03/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"5/3/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"05-03-2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"5 March 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"March 5, 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"05/03/24", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
		{"32/13/2024", time.Time{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseDate(tc.input, DateLayouts)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// Day-first is the resolution rule for ambiguous numeric dates: 05/03/2024
// is the fifth of March, not the third of May.
func TestParseDate_DayFirst(t *testing.T) {
	got, ok := ParseDate("05/03/2024", DateLayouts)
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParseDate_SummaryRoundTrip(t *testing.T) {
	inputs := []string{"05/03/2024", "2024-11-30", "1 January 2026"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, ok := ParseDate(input, DateLayouts)
			require.True(t, ok)

			second, ok := ParseDate(first.Format(SummaryDateFormat), DateLayouts)
			require.True(t, ok)
			assert.Equal(t, first, second)
		})
	}
}

func TestExtractAgreementDate(t *testing.T) {
	now := fixedNow()

	t.Run("labeled date", func(t *testing.T) {
		got := extractAgreementDate("Agreement Date: 05/03/2024", now, time.Time{})
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("execution clause", func(t *testing.T) {
		got := extractAgreementDate("executed on 15-08-2023 at Pune", now, time.Time{})
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2023, 8, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("ceremonial form", func(t *testing.T) {
		got := extractAgreementDate("made this 5th day of March, 2024", now, time.Time{})
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("last resort scan", func(t *testing.T) {
		got := extractAgreementDate("stamp paper serial 01/01/2024 issued", now, time.Time{})
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("implausibly old year rejected", func(t *testing.T) {
		assert.Nil(t, extractAgreementDate("Date: 01/01/1923", now, time.Time{}))
	})

	t.Run("implausibly future year rejected", func(t *testing.T) {
		assert.Nil(t, extractAgreementDate("Date: 01/01/2050", now, time.Time{}))
	})

	t.Run("no date present", func(t *testing.T) {
		assert.Nil(t, extractAgreementDate("no dates in this text", now, time.Time{}))
	})
}

func TestExtractTermDates(t *testing.T) {
	now := fixedNow()

	t.Run("commencing and ending", func(t *testing.T) {
		start, end := extractTermDates(
			"commencing from 01/01/2024 and ending on 30/11/2024", now, time.Time{})
		require.NotNil(t, start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("plain from-to", func(t *testing.T) {
		start, end := extractTermDates("from 01-04-2024 to 28-02-2025", now, time.Time{})
		require.NotNil(t, start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("with effect from", func(t *testing.T) {
		start, end := extractTermDates("w.e.f. 01/06/2024 till 30/04/2025", now, time.Time{})
		require.NotNil(t, start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("both ends must be plausible", func(t *testing.T) {
		start, end := extractTermDates("from 01/01/2024 to 30/11/1924", now, time.Time{})
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("no term clause", func(t *testing.T) {
		start, end := extractTermDates("a single date 01/01/2024 only", now, time.Time{})
		assert.Nil(t, start)
		assert.Nil(t, end)
	})
}
