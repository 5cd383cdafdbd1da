package main

import (
	"flag"

	"github.com/beldyconnect/backend/config"
	"github.com/beldyconnect/backend/internal/database"
	"github.com/beldyconnect/backend/internal/logger"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "directory containing SQL migration files")
	flag.Parse()

	log := logger.New()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.RunMigrations(db, *migrationsDir, log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	log.Info("migrations applied")
}
