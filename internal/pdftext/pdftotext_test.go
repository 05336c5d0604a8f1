package pdftext

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_MissingBinaryYieldsSentinel(t *testing.T) {
	p := New("leasedesk-nonexistent-pdftotext")

	res, err := p.ExtractText(context.Background(), "whatever.pdf")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Text, "Error processing PDF"))
	assert.Zero(t, res.PageCount)
}

func TestNew_DefaultBinary(t *testing.T) {
	assert.Equal(t, "pdftotext", New("").bin)
}

func TestIsPasswordError(t *testing.T) {
	assert.True(t, isPasswordError("Error: Incorrect password"))
	assert.True(t, isPasswordError("Command Line Error: file is encrypted"))
	assert.False(t, isPasswordError("Syntax Error: couldn't read xref table"))
}
