package port

import "context"

// TextResult is the outcome of extracting text from a PDF. When extraction
// fails upstream, Text carries a sentinel string ("Error processing PDF: ...")
// that the extraction core recognizes and short-circuits on, rather than an
// error: a bad PDF still produces a (field-less) record.
type TextResult struct {
	Text      string
	PageCount int
}

// TextExtractor converts a PDF file on disk into page-concatenated text.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (*TextResult, error)
}
