package main

import (
	"go.uber.org/zap"

	"fakenews-api/internal/config"
	"fakenews-api/internal/ml"
	"fakenews-api/internal/repository"
	"fakenews-api/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Load the classifier. The server still starts when loading fails;
	// it reports unhealthy and rejects predictions until a reload.
	model := ml.NewModel(cfg.Model.Path, cfg.Model.InfoPath, logger)
	if err := model.Load(); err != nil {
		logger.Warn("Starting without a loaded model", zap.Error(err))
	}

	// Initialize and run the server
	srv := server.NewServer(db, cfg, model, logger)
	srv.Run(cfg.Server.Port)
}
