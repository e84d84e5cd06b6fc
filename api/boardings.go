package api

import (
	"net/http"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/andinovuelo/flightops/internal/service/flightops"
	"github.com/gin-gonic/gin"
)

type BoardingHandler struct {
	service flightops.FlightOpsUseCase
}

// The boarded counter round-trips through the caller: it supplies the
// running total from its previous call and gets the updated value back.
type boardingRequest struct {
	TicketID int64  `json:"ticket_id"`
	FlightID int64  `json:"flight_id"`
	GateID   int64  `json:"gate_id"`
	Actor    string `json:"actor"`
	Boarded  int    `json:"boarded"`
}

type boardingResponse struct {
	OK       bool                   `json:"ok"`
	Boarded  int                    `json:"boarded"`
	Boarding *domain.BoardingRecord `json:"boarding,omitempty"`
}

func NewBoardingHandler(service flightops.FlightOpsUseCase) *BoardingHandler {
	return &BoardingHandler{service: service}
}

func (h *BoardingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

func (h *BoardingHandler) create(c *gin.Context) {
	var req boardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counter := flightops.BoardingCounter{Boarded: req.Boarded}
	record, err := h.service.RegisterBoarding(c.Request.Context(), flightops.BoardingInput{
		TicketID: req.TicketID,
		FlightID: req.FlightID,
		GateID:   req.GateID,
		Actor:    req.Actor,
	}, &counter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusCreated
	if record == nil {
		status = http.StatusOK
	}
	c.JSON(status, boardingResponse{OK: record != nil, Boarded: counter.Boarded, Boarding: record})
}
