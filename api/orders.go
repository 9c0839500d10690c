package api

import (
	"net/http"

	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/representation"
	"github.com/Domenick1991/airport-service/internal/service/orders"
	"github.com/gin-gonic/gin"
)

// OrderHandler must be mounted behind Authenticator.RequireIdentity.
type OrderHandler struct {
	service orders.OrderUseCase
}

func NewOrderHandler(service orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *OrderHandler) list(c *gin.Context) {
	d, ok := descriptor(c, representation.Order, representation.List)
	if !ok {
		return
	}
	caller, ok := identityFrom(c)
	if !ok {
		respondError(c, errs.Unauthenticated("Authentication credentials were not provided"))
		return
	}
	found, err := h.service.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	renderMany(c, d, found)
}

func (h *OrderHandler) get(c *gin.Context) {
	d, ok := descriptor(c, representation.Order, representation.Retrieve)
	if !ok {
		return
	}
	caller, ok := identityFrom(c)
	if !ok {
		respondError(c, errs.Unauthenticated("Authentication credentials were not provided"))
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusOK, d, *order)
}

// create takes ownership from the caller; an owner field in the body has no
// counterpart in CreateOrderInput and is dropped while decoding.
func (h *OrderHandler) create(c *gin.Context) {
	d, ok := descriptor(c, representation.Order, representation.Create)
	if !ok {
		return
	}
	caller, ok := identityFrom(c)
	if !ok {
		respondError(c, errs.Unauthenticated("Authentication credentials were not provided"))
		return
	}
	var input orders.CreateOrderInput
	if !bindJSON(c, &input) {
		return
	}
	order, err := h.service.Create(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, err)
		return
	}
	renderOne(c, http.StatusCreated, d, *order)
}
