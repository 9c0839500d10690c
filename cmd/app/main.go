package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport-service/api"
	"github.com/Domenick1991/airport-service/config"
	"github.com/Domenick1991/airport-service/internal/bootstrap"
	"github.com/Domenick1991/airport-service/internal/cache"
	"github.com/Domenick1991/airport-service/internal/database"
	"github.com/Domenick1991/airport-service/internal/kafka"
	"github.com/Domenick1991/airport-service/internal/logger"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/service/airplanes"
	"github.com/Domenick1991/airport-service/internal/service/airports"
	"github.com/Domenick1991/airport-service/internal/service/crews"
	"github.com/Domenick1991/airport-service/internal/service/flights"
	"github.com/Domenick1991/airport-service/internal/service/identity"
	"github.com/Domenick1991/airport-service/internal/service/orders"
	"github.com/Domenick1991/airport-service/internal/service/routes"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Log, "airport-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, cfg.Database, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	pool, err := database.New(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	var (
		flightCache flights.FlightCache
		tokenCache  identity.TokenCache
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cache.FlightsTTL(), cfg.Cache.TokensTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, caching disabled")
		} else {
			flightCache, tokenCache = redisCache, redisCache
		}
	}

	var producer orders.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer p.Close()
		if err := p.CheckConnection(ctx); err != nil {
			log.Warn().Err(err).Msg("kafka unreachable at startup, publishing anyway")
		}
		producer = p
	}

	svc := newServices(log, repositories{
		crews:         repository.NewCrewRepository(pool),
		airports:      repository.NewAirportRepository(pool),
		routes:        repository.NewRouteRepository(pool),
		airplaneTypes: repository.NewAirplaneTypeRepository(pool),
		airplanes:     repository.NewAirplaneRepository(pool),
		flights:       repository.NewFlightRepository(pool),
		orders:        repository.NewOrderRepository(pool),
		identities:    repository.NewIdentityRepository(pool),
	}, flightCache, tokenCache, producer, cfg.Kafka.OrdersTopic)

	if err := bootstrap.Run(ctx, cfg, log, svc, pool); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

type repositories struct {
	crews         repository.CrewRepository
	airports      repository.AirportRepository
	routes        repository.RouteRepository
	airplaneTypes repository.AirplaneTypeRepository
	airplanes     repository.AirplaneRepository
	flights       repository.FlightRepository
	orders        repository.OrderRepository
	identities    repository.IdentityRepository
}

func newServices(
	log zerolog.Logger,
	repos repositories,
	flightCache flights.FlightCache,
	tokenCache identity.TokenCache,
	producer orders.Producer,
	ordersTopic string,
) api.Services {
	return api.Services{
		Crews:         crews.NewCrewService(repos.crews),
		Airports:      airports.NewAirportService(repos.airports),
		Routes:        routes.NewRouteService(repos.routes),
		AirplaneTypes: airplanes.NewAirplaneTypeService(repos.airplaneTypes),
		Airplanes:     airplanes.NewAirplaneService(repos.airplanes),
		Flights:       flights.NewFlightService(repos.flights, flightCache, flights.WithLogger(log)),
		Orders: orders.NewOrderService(repos.orders, repos.flights, producer, ordersTopic,
			orders.WithLogger(log)),
		Identity: identity.NewIdentityService(repos.identities, tokenCache, log),
	}
}
