package api

import (
	"net/http"
	"strconv"

	"github.com/andinovuelo/flightops/internal/service/reports"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service reports.ReportUseCase
}

func NewReportHandler(service reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights/:id/stats", h.stats)
	router.GET("/flights/:id/classification", h.classification)
	router.GET("/frequent-flyers", h.frequentFlyers)
	router.GET("/route-profitability", h.routeProfitability)
}

func (h *ReportHandler) stats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	stats, err := h.service.FlightStats(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) classification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	classification, err := h.service.ClassifyFlight(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classification)
}

func (h *ReportHandler) frequentFlyers(c *gin.Context) {
	min, err := strconv.Atoi(c.DefaultQuery("min", "1"))
	if err != nil || min < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min"})
		return
	}
	flyers, err := h.service.FrequentFlyers(c.Request.Context(), min)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flyers)
}

func (h *ReportHandler) routeProfitability(c *gin.Context) {
	origin, err := strconv.ParseInt(c.Query("origin_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin_id"})
		return
	}
	destination, err := strconv.ParseInt(c.Query("destination_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination_id"})
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}

	report, err := h.service.RouteProfitability(c.Request.Context(), origin, destination, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
