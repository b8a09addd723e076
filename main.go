package main

import (
	"flag"

	"aurora-backend/config"
	"aurora-backend/database"
	"aurora-backend/routes"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"
)

func main() {
	seed := flag.Bool("seed", false, "load development fixtures after migrating")
	flag.Parse()

	// Load environment variables from .env when present.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, sync := config.NewLogger(cfg)
	defer sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if *seed {
		if err := database.Seed(db, logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
	}

	rdb := config.NewRedis(cfg)

	r := routes.SetupRouter(cfg, logger, db, rdb)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
