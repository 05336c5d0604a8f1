package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leasedesk/internal/csvexport"
	"leasedesk/internal/domain"
	"leasedesk/internal/xlsxexport"
)

// AgreementLister lists all stored agreements for exporting.
type AgreementLister interface {
	ListAll(ctx context.Context) ([]domain.Agreement, error)
}

// ExportHandler handles export endpoints.
type ExportHandler struct {
	repo AgreementLister
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(repo AgreementLister) *ExportHandler {
	return &ExportHandler{repo: repo}
}

// ExportCSV handles GET /api/v1/export/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	agreements, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("agreements_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteAgreements(agreements); err != nil {
		return
	}
	w.Flush()
}

// ExportXLSX handles GET /api/v1/export/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	agreements, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, agreements); err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("agreements_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
