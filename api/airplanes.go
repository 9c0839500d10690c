package api

import (
	"net/http"

	"github.com/Domenick1991/airport-service/internal/representation"
	"github.com/Domenick1991/airport-service/internal/service/airplanes"
	"github.com/gin-gonic/gin"
)

type AirplaneTypeHandler struct {
	service airplanes.AirplaneTypeUseCase
}

func NewAirplaneTypeHandler(service airplanes.AirplaneTypeUseCase) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{service: service}
}

func (h *AirplaneTypeHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *AirplaneTypeHandler) list(c *gin.Context) {
	d, ok := descriptor(c, representation.AirplaneType, representation.List)
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

func (h *AirplaneTypeHandler) get(c *gin.Context) {
	d, ok := descriptor(c, representation.AirplaneType, representation.Retrieve)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplaneType, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusOK, d, *airplaneType)
}

func (h *AirplaneTypeHandler) create(c *gin.Context) {
	d, ok := descriptor(c, representation.AirplaneType, representation.Create)
	if !ok {
		return
	}
	var input airplanes.CreateAirplaneTypeInput
	if !bindJSON(c, &input) {
		return
	}
	airplaneType, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusCreated, d, *airplaneType)
}

type AirplaneHandler struct {
	service airplanes.AirplaneUseCase
}

func NewAirplaneHandler(service airplanes.AirplaneUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	d, ok := descriptor(c, representation.Airplane, representation.List)
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

func (h *AirplaneHandler) get(c *gin.Context) {
	d, ok := descriptor(c, representation.Airplane, representation.Retrieve)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusOK, d, *airplane)
}

func (h *AirplaneHandler) create(c *gin.Context) {
	d, ok := descriptor(c, representation.Airplane, representation.Create)
	if !ok {
		return
	}
	var input airplanes.CreateAirplaneInput
	if !bindJSON(c, &input) {
		return
	}
	airplane, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusCreated, d, *airplane)
}
