package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/andinovuelo/flightops/internal/service/flightops"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flightops.FlightOpsUseCase
}

type registerFlightRequest struct {
	Number        string `json:"number"`
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	AircraftID    int64  `json:"aircraft_id"`
	AirlineID     int64  `json:"airline_id"`
	OriginID      int64  `json:"origin_id"`
	DestinationID int64  `json:"destination_id"`
	Actor         string `json:"actor"`
}

func NewFlightHandler(service flightops.FlightOpsUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.POST("/", h.register)
}

func (h *FlightHandler) search(c *gin.Context) {
	airlineID, err := strconv.ParseInt(c.Query("airline_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airline_id"})
		return
	}
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	flights, err := h.service.Search(c.Request.Context(), flightops.SearchInput{
		AirlineID: airlineID,
		From:      from,
		To:        to,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetFlight(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) register(c *gin.Context) {
	var req registerFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_time"})
		return
	}
	arrival, err := time.Parse(time.RFC3339, req.ArrivalTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid arrival_time"})
		return
	}

	result, err := h.service.RegisterFlight(c.Request.Context(), flightops.RegisterFlightInput{
		Number:        req.Number,
		Date:          date,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		AircraftID:    req.AircraftID,
		AirlineID:     req.AirlineID,
		OriginID:      req.OriginID,
		DestinationID: req.DestinationID,
		Actor:         req.Actor,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch result.Status {
	case domain.RegistrationCreated:
		c.JSON(http.StatusCreated, result)
	case domain.RegistrationDuplicate:
		c.JSON(http.StatusConflict, result)
	default:
		c.JSON(http.StatusInternalServerError, result)
	}
}
