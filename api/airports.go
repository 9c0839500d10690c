package api

import (
	"net/http"

	"github.com/Domenick1991/airport-service/internal/representation"
	"github.com/Domenick1991/airport-service/internal/service/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *AirportHandler) list(c *gin.Context) {
	d, ok := descriptor(c, representation.Airport, representation.List)
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

func (h *AirportHandler) get(c *gin.Context) {
	d, ok := descriptor(c, representation.Airport, representation.Retrieve)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusOK, d, *airport)
}

func (h *AirportHandler) create(c *gin.Context) {
	d, ok := descriptor(c, representation.Airport, representation.Create)
	if !ok {
		return
	}
	var input airports.CreateAirportInput
	if !bindJSON(c, &input) {
		return
	}
	airport, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusCreated, d, *airport)
}
