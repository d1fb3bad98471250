package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/lehigh-university-libraries/waterprint/internal/analysis"
)

type Handler struct {
	service *analysis.Service
}

func New(service *analysis.Service) *Handler {
	return &Handler{service: service}
}

// Response helpers
func (h *Handler) writeJSON(c *gin.Context, code int, body map[string]any) {
	if code >= 500 {
		slog.Error("Analysis request failed", "status", code, "error", body["error"], "request_id", requestID(c))
	} else if code >= 400 {
		slog.Warn("Analysis request rejected", "status", code, "error", body["error"], "request_id", requestID(c))
	}
	c.JSON(code, gin.H(body))
}
