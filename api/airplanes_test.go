package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/service/airplanes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var sampleAirplane = domain.Airplane{
	ID: 1, Name: "RA-1", Rows: 20, SeatsInRow: 6,
	AirplaneType: domain.AirplaneType{ID: 4, Name: "A320"},
}

func TestAirplaneHandler_list(t *testing.T) {
	mockService := &MockAirplaneUseCase{}
	handler := NewAirplaneHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/airplanes", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.Airplane{sampleAirplane}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"RA-1","rows":20,"seats_in_row":6,"airplane_type":"A320","num_of_seats":120}]`,
		w.Body.String())
}

func TestAirplaneHandler_create_NestedType(t *testing.T) {
	mockService := &MockAirplaneUseCase{}
	handler := NewAirplaneHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name":"RA-1","rows":20,"seats_in_row":6,"airplane_type":{"name":"A320"}}`
	c.Request = httptest.NewRequest("POST", "/airplanes", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := airplanes.CreateAirplaneInput{
		Name: "RA-1", Rows: 20, SeatsInRow: 6,
		AirplaneType: airplanes.AirplaneTypeInput{Name: "A320"},
	}
	airplane := sampleAirplane
	mockService.On("Create", c.Request.Context(), input).Return(&airplane, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"RA-1","rows":20,"seats_in_row":6,
		"airplane_type":{"id":4,"name":"A320"},"num_of_seats":120}`, w.Body.String())
}

func TestAirplaneTypeHandler_get(t *testing.T) {
	mockService := &MockAirplaneTypeUseCase{}
	handler := NewAirplaneTypeHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	c.Request = httptest.NewRequest("GET", "/airplane_types/4", nil)

	mockService.On("GetByID", c.Request.Context(), int64(4)).Return(&domain.AirplaneType{ID: 4, Name: "A320"}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"name":"A320"}`, w.Body.String())
}
