package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport-service/config"
	"github.com/Domenick1991/airport-service/internal/email"
	"github.com/Domenick1991/airport-service/internal/kafka"
	"github.com/Domenick1991/airport-service/internal/logger"
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
	log := logger.New(cfg.Log, "airport-worker")

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("kafka.brokers is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrdersTopic, log)
	defer consumer.Close()

	sender := email.NewSenderFromConfig(cfg.Email, log)

	log.Info().Str("topic", cfg.Kafka.OrdersTopic).Msg("worker started")
	if err := consumer.ConsumeOrders(ctx, sender.Send); err != nil {
		log.Error().Err(err).Msg("consumer stopped")
		return
	}
	log.Info().Msg("worker stopped")
}
