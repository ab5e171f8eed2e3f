package main

import (
	"context"
	"log"

	"flight-booking/cmd"
	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/internal/wire"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional infrastructure; both run as no-ops when unconfigured
	flightCache := cache.NewFlightCache(config.Redis)
	producer := events.NewProducer(config.Kafka.Brokers, config.Kafka.Topic, logger)
	defer producer.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, flightCache, producer, logger)

	// Push departed flights forward before taking traffic
	rolled, err := app.Service.Flight.RolloverStaleFlights(context.Background())
	if err != nil {
		logger.Error("Rollover sweep failed", zap.Error(err))
	} else if rolled > 0 {
		logger.Info("Rollover sweep finished", zap.Int("flights_rolled", rolled))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
