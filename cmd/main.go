package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pantry-backend/cmd/config"
	migration "pantry-backend/cmd/database/migrate"
	"pantry-backend/internal/utils"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFile, "api")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if *migrate {
		if err := migration.Migrate(db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		logger.Info("database migrated")
	}

	app, err := config.NewApp(db, cfg, logger)
	if err != nil {
		logger.Fatal("failed to setup app", zap.Error(err))
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.AppPort), zap.String("target_lang", cfg.TargetLang))
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server exited")
}
