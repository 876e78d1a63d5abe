package handlers

import (
	"errors"
	"net/http"

	"carrier-booking-api-server/internal/s3"
	"carrier-booking-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type LabelHandler struct {
	Labels     store.LabelStore
	S3Uploader *s3.Uploader
}

// UploadLabelPDF archives the carrier-produced PDF for a label and stores
// its URL on the label document.
func (h *LabelHandler) UploadLabelPDF(c *gin.Context) {
	labelID := c.Param("id")

	if _, err := h.Labels.GetLabel(c.Request.Context(), labelID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve label"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.S3Uploader.UploadLabelPDF(c.Request.Context(), file, labelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload label PDF", "details": err.Error()})
		return
	}

	if err := h.Labels.SetLabelPDF(c.Request.Context(), labelID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store label PDF URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "pdfURL": url})
}
