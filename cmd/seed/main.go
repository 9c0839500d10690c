// Command seed bulk-loads airports and crew members from CSV files. Rows go
// through the same services as the API, so invalid rows are reported and
// skipped.
//
//	seed -airports airports.csv -crews crews.csv
//
// airports.csv needs the columns name,closest_big_city and crews.csv the
// columns first_name,last_name.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport-service/config"
	"github.com/Domenick1991/airport-service/internal/database"
	"github.com/Domenick1991/airport-service/internal/logger"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/service/airports"
	"github.com/Domenick1991/airport-service/internal/service/crews"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	airportsPath := flag.String("airports", "", "CSV file with airports")
	crewsPath := flag.String("crews", "", "CSV file with crew members")
	flag.Parse()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Log, "airport-seed")

	if *airportsPath == "" && *crewsPath == "" {
		log.Fatal().Msg("nothing to load: pass -airports and/or -crews")
	}

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

	if *airportsPath != "" {
		svc := airports.NewAirportService(repository.NewAirportRepository(pool))
		res, err := loadFile(ctx, *airportsPath, func(ctx context.Context, in airports.CreateAirportInput) error {
			_, err := svc.Create(ctx, in)
			return err
		})
		if err != nil {
			log.Fatal().Err(err).Str("file", *airportsPath).Msg("load airports")
		}
		res.log(log, "airports")
	}

	if *crewsPath != "" {
		svc := crews.NewCrewService(repository.NewCrewRepository(pool))
		res, err := loadFile(ctx, *crewsPath, func(ctx context.Context, in crews.CreateCrewInput) error {
			_, err := svc.Create(ctx, in)
			return err
		})
		if err != nil {
			log.Fatal().Err(err).Str("file", *crewsPath).Msg("load crews")
		}
		res.log(log, "crews")
	}
}
