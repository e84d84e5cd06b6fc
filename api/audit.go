package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/gin-gonic/gin"
)

// AuditSource reads the append-only change log. Satisfied by
// repository.ChangeLogRepository.
type AuditSource interface {
	Recent(ctx context.Context, limit int) ([]domain.ChangeEntry, error)
}

type AuditHandler struct {
	source AuditSource
}

func NewAuditHandler(source AuditSource) *AuditHandler {
	return &AuditHandler{source: source}
}

func (h *AuditHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *AuditHandler) list(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	entries, err := h.source.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
