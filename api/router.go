package api

import (
	"time"

	"github.com/Domenick1991/airport-service/internal/service/airplanes"
	"github.com/Domenick1991/airport-service/internal/service/airports"
	"github.com/Domenick1991/airport-service/internal/service/crews"
	"github.com/Domenick1991/airport-service/internal/service/flights"
	"github.com/Domenick1991/airport-service/internal/service/identity"
	"github.com/Domenick1991/airport-service/internal/service/orders"
	"github.com/Domenick1991/airport-service/internal/service/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Services struct {
	Crews         crews.CrewUseCase
	Airports      airports.AirportUseCase
	Routes        routes.RouteUseCase
	AirplaneTypes airplanes.AirplaneTypeUseCase
	Airplanes     airplanes.AirplaneUseCase
	Flights       flights.FlightUseCase
	Orders        orders.OrderUseCase
	Identity      identity.IdentityUseCase
}

type routerOptions struct {
	corsOrigins []string
}

type RouterOption func(*routerOptions)

// WithCORS allows browser calls from origins. No origins leaves CORS off.
func WithCORS(origins []string) RouterOption {
	return func(o *routerOptions) {
		o.corsOrigins = origins
	}
}

// NewRouter builds the engine with every resource mounted. Only /orders
// requires an identity.
func NewRouter(log zerolog.Logger, svc Services, opts ...RouterOption) *gin.Engine {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	router := gin.New()
	router.Use(RequestID(), RequestLogger(log), gin.Recovery())
	if len(o.corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  o.corsOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
			ExposeHeaders: []string{requestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	NewCrewHandler(svc.Crews).Register(router.Group("/crews"))
	NewAirportHandler(svc.Airports).Register(router.Group("/airports"))
	NewRouteHandler(svc.Routes).Register(router.Group("/routers"))
	NewAirplaneTypeHandler(svc.AirplaneTypes).Register(router.Group("/airplane_types"))
	NewAirplaneHandler(svc.Airplanes).Register(router.Group("/airplanes"))
	NewFlightHandler(svc.Flights).Register(router.Group("/flights"))

	auth := NewAuthenticator(svc.Identity)
	NewOrderHandler(svc.Orders).Register(router.Group("/orders", auth.RequireIdentity()))

	return router
}
