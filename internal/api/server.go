package api

import (
	"context"
	"os"
	"strings"
	"time"

	"seeds-backend/internal/app/config"
	"seeds-backend/internal/app/handler"
	"seeds-backend/internal/app/repository"
	"seeds-backend/internal/app/storage"
	"seeds-backend/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const minioSetupTimeout = 10 * time.Second

func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("config init failed: %v", err)
	}
	setupLogger(cfg)

	repo, err := repository.New(cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("repository init failed: %v", err)
	}
	if err := repo.Ping(); err != nil {
		logrus.Warnf("database ping failed: %v", err)
	}

	h := handler.NewHandler(repo, newSeedStorage(cfg.MinIO))

	app := pkg.NewApp(cfg, gin.New(), h)
	app.RunApp()
}

// newSeedStorage returns nil when MinIO cannot be reached, the server then
// runs with image uploads treated as failed.
func newSeedStorage(cfg config.MinIOConfig) handler.SeedStorage {
	ctx, cancel := context.WithTimeout(context.Background(), minioSetupTimeout)
	defer cancel()

	client, err := storage.NewMinIOClient(ctx, cfg)
	if err != nil {
		logrus.Warnf("MinIO unavailable, seed images disabled: %v", err)
		return nil
	}
	return client
}

func setupLogger(cfg *config.Config) {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
