package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airport-service/api"
	"github.com/Domenick1991/airport-service/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func testConfig(swaggerDir string) *config.Config {
	return &config.Config{HTTP: config.HTTPConfig{
		Address:             ":0",
		SwaggerDir:          swaggerDir,
		ReadTimeoutSeconds:  1,
		WriteTimeoutSeconds: 1,
	}}
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := NewServer(testConfig(""), zerolog.Nop(), api.Services{}, fakePinger{})
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	srv = NewServer(testConfig(""), zerolog.Nop(), api.Services{}, fakePinger{err: errors.New("dial tcp 10.0.0.5:5432: connection refused")})
	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestSwaggerMountedOnlyWithDir(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := NewServer(testConfig(""), zerolog.Nop(), api.Services{}, nil)
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/docs/index.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	srv = NewServer(testConfig(t.TempDir()), zerolog.Nop(), api.Services{}, nil)
	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, testConfig(""), zerolog.Nop(), api.Services{}, nil)
	assert.NoError(t, err)
}
