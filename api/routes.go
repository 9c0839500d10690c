package api

import (
	"net/http"

	"github.com/Domenick1991/airport-service/internal/representation"
	"github.com/Domenick1991/airport-service/internal/service/routes"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service routes.RouteUseCase
}

func NewRouteHandler(service routes.RouteUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *RouteHandler) list(c *gin.Context) {
	d, ok := descriptor(c, representation.Route, representation.List)
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

func (h *RouteHandler) get(c *gin.Context) {
	d, ok := descriptor(c, representation.Route, representation.Retrieve)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusOK, d, *route)
}

func (h *RouteHandler) create(c *gin.Context) {
	d, ok := descriptor(c, representation.Route, representation.Create)
	if !ok {
		return
	}
	var input routes.CreateRouteInput
	if !bindJSON(c, &input) {
		return
	}
	route, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusCreated, d, *route)
}
