package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"showroom-backend/db/migrations"
	"showroom-backend/internal/config"
	"showroom-backend/internal/logger"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Running database migrations...", "host", cfg.Database.Host, "database", cfg.Database.Database)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := migrations.Run(db); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
	logger.Info("Migrations applied successfully")
}
