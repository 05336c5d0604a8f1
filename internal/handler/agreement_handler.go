package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leasedesk/internal/service"
)

// AgreementHandler handles agreement endpoints.
type AgreementHandler struct {
	agreements service.AgreementService
}

// NewAgreementHandler creates a new AgreementHandler.
func NewAgreementHandler(agreements service.AgreementService) *AgreementHandler {
	return &AgreementHandler{agreements: agreements}
}

// Upload handles POST /api/v1/agreements/upload
func (h *AgreementHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	input := &service.UploadAgreementInput{
		Filename: header.Filename,
		Title:    c.PostForm("title"),
		Data:     data,
	}

	agreement, err := h.agreements.ProcessUpload(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, agreement)
}

// List handles GET /api/v1/agreements
func (h *AgreementHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.agreements.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/agreements/:id
func (h *AgreementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid agreement id")
		return
	}

	agreement, err := h.agreements.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, agreement)
}

// Reextract handles POST /api/v1/agreements/:id/reextract
func (h *AgreementHandler) Reextract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid agreement id")
		return
	}

	agreement, err := h.agreements.Reextract(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, agreement)
}

// Delete handles DELETE /api/v1/agreements/:id
func (h *AgreementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid agreement id")
		return
	}

	if err := h.agreements.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// OriginalURL handles GET /api/v1/agreements/:id/original
func (h *AgreementHandler) OriginalURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid agreement id")
		return
	}

	url, err := h.agreements.GetOriginalURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}

// DownloadOriginal handles GET /api/v1/agreements/:id/original/download
func (h *AgreementHandler) DownloadOriginal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid agreement id")
		return
	}

	data, filename, err := h.agreements.DownloadOriginal(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
