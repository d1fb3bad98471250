package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lehigh-university-libraries/waterprint/internal/analysis"
	"github.com/lehigh-university-libraries/waterprint/internal/apperrors"
)

type AnalyzeRequest struct {
	Image string `json:"image"`
}

// HandleAnalyze answers POST /analyze
func (h *Handler) HandleAnalyze(c *gin.Context) {
	model := h.service.Model()
	if !model.Loaded() {
		code, body := analysis.Envelope(nil, apperrors.New(apperrors.KindModelUnavailable, model.UnavailableMessage(), model.Err()))
		h.writeJSON(c, code, body)
		return
	}

	var request AnalyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(c, http.StatusRequestEntityTooLarge, map[string]any{
				"success": false,
				"error":   "Image payload too large.",
			})
			return
		}
		code, body := analysis.UnexpectedEnvelope(err)
		h.writeJSON(c, code, body)
		return
	}

	rec, err := h.service.Analyze(c.Request.Context(), request.Image)
	code, body := analysis.Envelope(rec, err)
	h.writeJSON(c, code, body)
}

// HandleHealth answers GET /health. It only reports startup state and never fails.
func (h *Handler) HandleHealth(c *gin.Context) {
	status := "healthy"
	if !h.service.ModelLoaded() {
		status = "warning (model not loaded)"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
