package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"docuchat/internal/config"
	"docuchat/internal/repository"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger
	Store  *repository.DocumentStore

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger, err := newLogger(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger failed: %w", err)
	}

	for _, dir := range []string{cfg.Storage.UploadDir, cfg.Storage.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s failed: %w", dir, err)
		}
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Store:     repository.NewDocumentStore(),
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.Logger != nil {
		// Sync flushes buffered log entries; stderr sync errors are expected
		// on some platforms and not actionable.
		_ = a.Logger.Sync()
	}
	return nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
