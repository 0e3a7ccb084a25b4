package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/daycare-data/data"
	"github.com/localnerve/daycare-data/internal/config"
	"github.com/localnerve/daycare-data/internal/database"
	"github.com/localnerve/daycare-data/internal/logging"
	"github.com/localnerve/daycare-data/internal/seed"
	"github.com/localnerve/daycare-data/internal/store"
	"go.uber.org/zap"
)

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var seedFilename string
	flag.StringVar(&seedFilename, "data", "", "seed file to load instead of the embedded sample")
	flag.Parse()

	if envFilename != "" {
		if err := godotenv.Load(envFilename); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load environment variables: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	raw := data.SeedJSON
	if seedFilename != "" {
		if raw, err = os.ReadFile(seedFilename); err != nil {
			logger.Fatal("failed to read seed file", zap.String("file", seedFilename), zap.Error(err))
		}
	}

	ds, err := seed.Parse(raw)
	if err != nil {
		logger.Fatal("invalid seed data", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	summary, err := seed.Load(ctx, store.NewGormStore(db), ds)
	for collection, n := range summary {
		logger.Info("seeded", zap.String("collection", collection), zap.Int("documents", n))
	}
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
