package api

import (
	"net/http"

	"github.com/Domenick1991/airport-service/internal/representation"
	"github.com/Domenick1991/airport-service/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	d, ok := descriptor(c, representation.Flight, representation.List)
	if !ok {
		return
	}
	found, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	renderMany(c, d, found)
}

func (h *FlightHandler) get(c *gin.Context) {
	d, ok := descriptor(c, representation.Flight, representation.Retrieve)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusOK, d, *flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	d, ok := descriptor(c, representation.Flight, representation.Create)
	if !ok {
		return
	}
	var input flights.CreateFlightInput
	if !bindJSON(c, &input) {
		return
	}
	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusCreated, d, *flight)
}
