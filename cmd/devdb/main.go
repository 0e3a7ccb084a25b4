package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/daycare-data/internal/config"
	"github.com/localnerve/daycare-data/internal/database"
	"github.com/localnerve/daycare-data/internal/logging"
	"github.com/localnerve/daycare-data/internal/testinfra"
	"go.uber.org/zap"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var image string
	flag.StringVar(&image, "image", testinfra.DefaultPostgresImage, "postgres image")
	flag.Parse()

	usage := `
Start a disposable PostgreSQL for local development and write a matching
credentials file. The database is removed when this process is interrupted.

Usage:

devdb [-h] [-f ENV_FILE_PATH] [-image IMAGE]

ENV_FILE_PATH: path to the .env file

example
  devdb -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	logger, err := logging.New("info", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if envFilename != "" {
		logger.Info("loading environment variables", zap.String("file", envFilename))
		if err := godotenv.Load(envFilename); err != nil {
			logger.Fatal("failed to load environment variables", zap.Error(err))
		}
	}

	credentialsPath := os.Getenv("CREDENTIALS_PATH")
	if credentialsPath == "" {
		appEnv := os.Getenv("APP_ENV")
		if appEnv == "" {
			appEnv = "development"
		}
		credentialsPath = config.DefaultCredentialsPath(appEnv)
	}

	ctx := context.Background()
	pg, err := testinfra.StartPostgres(ctx, image)
	if err != nil {
		logger.Fatal("failed to start postgres", zap.Error(err))
	}

	if err := pg.WriteCredentials(credentialsPath); err != nil {
		_ = pg.Terminate(ctx)
		logger.Fatal("failed to write credentials", zap.Error(err))
	}

	db, err := database.Connect(pg.Config())
	if err != nil {
		_ = pg.Terminate(ctx)
		logger.Fatal("failed to connect", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = pg.Terminate(ctx)
		logger.Fatal("failed to migrate", zap.Error(err))
	}
	_ = database.Close(db)

	logger.Info("postgres ready",
		zap.String("DB_TYPE", "postgres"),
		zap.String("DB_HOST", pg.Host),
		zap.String("DB_PORT", pg.Port),
		zap.String("DB_DATABASE", pg.Database),
		zap.String("CREDENTIALS_PATH", credentialsPath),
	)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	logger.Info("terminating postgres", zap.String("signal", sig.String()))
	if err := pg.Terminate(ctx); err != nil {
		logger.Error("failed to terminate postgres", zap.Error(err))
	}
}
