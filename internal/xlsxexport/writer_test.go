package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"leasedesk/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestWrite_DataAndSummarySheets(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	agreements := []domain.Agreement{
		{
			ID:         uuid.New(),
			Title:      "flat-101",
			Filename:   "flat-101.pdf",
			Licensor:   strPtr("Mr. John Smith"),
			Licensee:   strPtr("Ms. Jane Doe"),
			StartDate:  &start,
			UploadedAt: time.Now().UTC(),
		},
		{
			ID:         uuid.New(),
			Title:      "locked",
			Filename:   "locked.pdf",
			UploadedAt: time.Now().UTC(),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, agreements))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, "flat-101", rows[1][0])
	assert.Equal(t, "Mr. John Smith", rows[1][2])
	assert.Equal(t, "2024-04-01", rows[1][6])
	assert.Equal(t, "locked", rows[2][0])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(summary), 8)
	assert.Equal(t, []string{"Field", "Extracted", "Total"}, summary[0][:3])
	assert.Equal(t, "Licensor", summary[1][0])
	assert.Equal(t, "1", summary[1][1])
	assert.Equal(t, "2", summary[1][2])
}

func TestWrite_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
