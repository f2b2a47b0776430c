package main

import (
	"context"
	"flag"
	"log"

	"quiz-deck/internal/config"
	"quiz-deck/internal/database"
	"quiz-deck/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	dir, err := database.ParseDirection(*direction)
	if err != nil {
		log.Fatalf("Invalid direction: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.DB.Driver, dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err), zap.String("direction", *direction))
	}
	l.Info("Migrations complete", zap.String("driver", cfg.DB.Driver), zap.String("direction", *direction))
}
