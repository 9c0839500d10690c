package api

import (
	"net/http"

	"github.com/Domenick1991/airport-service/internal/representation"
	"github.com/Domenick1991/airport-service/internal/service/crews"
	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	service crews.CrewUseCase
}

func NewCrewHandler(service crews.CrewUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

// list filters by ?full_name= when present.
func (h *CrewHandler) list(c *gin.Context) {
	d, ok := descriptor(c, representation.Crew, representation.List)
	if !ok {
		return
	}
	found, err := h.service.List(c.Request.Context(), c.Query("full_name"))
	if err != nil {
		respondError(c, err)
		return
	}
	renderMany(c, d, found)
}

func (h *CrewHandler) get(c *gin.Context) {
	d, ok := descriptor(c, representation.Crew, representation.Retrieve)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	crew, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusOK, d, *crew)
}

func (h *CrewHandler) create(c *gin.Context) {
	d, ok := descriptor(c, representation.Crew, representation.Create)
	if !ok {
		return
	}
	var input crews.CreateCrewInput
	if !bindJSON(c, &input) {
		return
	}
	crew, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusCreated, d, *crew)
}
