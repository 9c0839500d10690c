package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/service/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRoute = domain.Route{
	ID:          1,
	Source:      domain.Airport{ID: 1, Name: "SVO", ClosestBigCity: "Moscow"},
	Destination: domain.Airport{ID: 2, Name: "LED", ClosestBigCity: "Saint Petersburg"},
	Distance:    600,
}

func TestRouteHandler_list_UsesNames(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/routers", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.Route{sampleRoute}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"source":"SVO","destination":"LED","distance":600}]`, w.Body.String())
}

func TestRouteHandler_get_Nested(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/routers/1", nil)

	route := sampleRoute
	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(&route, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,
		"source":{"id":1,"name":"SVO","closest_big_city":"Moscow"},
		"destination":{"id":2,"name":"LED","closest_big_city":"Saint Petersburg"},
		"distance":600}`, w.Body.String())
}

func TestRouteHandler_create_SameEndpoints(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := routes.CreateRouteInput{
		Source:      routes.AirportInput{ID: 1},
		Destination: routes.AirportInput{ID: 1},
		Distance:    10,
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/routers", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), input).
		Return(nil, errs.Field("destination", "must differ from source"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "destination", resp.Errors[0].Field)
}

func TestRouteHandler_create_NestedAirports(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"source":{"id":1},"destination":{"name":"LED","closest_big_city":"Saint Petersburg"},"distance":600}`
	c.Request = httptest.NewRequest("POST", "/routers", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := routes.CreateRouteInput{
		Source:      routes.AirportInput{ID: 1},
		Destination: routes.AirportInput{Name: "LED", ClosestBigCity: "Saint Petersburg"},
		Distance:    600,
	}
	route := sampleRoute
	mockService.On("Create", c.Request.Context(), input).Return(&route, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "LED", resp["destination"].(map[string]any)["name"])
	mockService.AssertExpectations(t)
}

func TestRouteHandler_create_Conflict(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"source":{"id":1},"destination":{"id":2},"distance":600}`
	c.Request = httptest.NewRequest("POST", "/routers", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := routes.CreateRouteInput{
		Source:      routes.AirportInput{ID: 1},
		Destination: routes.AirportInput{ID: 2},
		Distance:    600,
	}
	mockService.On("Create", c.Request.Context(), input).
		Return(nil, errs.Conflict("ROUTE_ALREADY_EXISTS", "Route already exists"))

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
