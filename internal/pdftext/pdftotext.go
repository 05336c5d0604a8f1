package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"leasedesk/internal/port"
)

// PdfToText extracts text from PDF files by shelling out to the poppler
// pdftotext binary. Extraction failures are folded into the returned text as
// sentinel strings rather than errors so a corrupt or locked PDF still yields
// a storable (field-less) record.
type PdfToText struct {
	bin string
}

// New creates a PdfToText using the given binary path ("pdftotext" when empty).
func New(bin string) *PdfToText {
	if bin == "" {
		bin = "pdftotext"
	}
	return &PdfToText{bin: bin}
}

func (p *PdfToText) ExtractText(ctx context.Context, path string) (*port.TextResult, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.bin, "-layout", "-enc", "UTF-8", path, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if isPasswordError(msg) {
			log.Printf("pdftext.PdfToText: %s is password protected", path)
			return &port.TextResult{Text: "Error processing PDF: file is password protected"}, nil
		}
		log.Printf("pdftext.PdfToText: extracting %s failed: %v: %s", path, err, msg)
		return &port.TextResult{Text: fmt.Sprintf("Error processing PDF: %v", err)}, nil
	}

	pages, err := p.pageCount(ctx, path)
	if err != nil {
		log.Printf("pdftext.PdfToText: page count for %s failed: %v", path, err)
		pages = 0
	}
	return &port.TextResult{Text: stdout.String(), PageCount: pages}, nil
}

func (p *PdfToText) pageCount(ctx context.Context, path string) (int, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, "pdfinfo", path)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return 0, err
	}
	for _, line := range strings.Split(stdout.String(), "\n") {
		if rest, ok := strings.CutPrefix(line, "Pages:"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return 0, fmt.Errorf("parsing page count: %w", err)
			}
			return n, nil
		}
	}
	return 0, fmt.Errorf("no Pages line in pdfinfo output")
}

func isPasswordError(stderr string) bool {
	s := strings.ToLower(stderr)
	return strings.Contains(s, "incorrect password") ||
		strings.Contains(s, "encrypted") ||
		strings.Contains(s, "password")
}
