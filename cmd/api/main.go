package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/georgeey123/ghanada-works/internal/api"
	handler "github.com/georgeey123/ghanada-works/internal/api/handlers"
	"github.com/georgeey123/ghanada-works/internal/cache"
	"github.com/georgeey123/ghanada-works/internal/cms"
	"github.com/georgeey123/ghanada-works/internal/config"
	"github.com/georgeey123/ghanada-works/internal/domain/content"
	"github.com/georgeey123/ghanada-works/internal/logger"
	"github.com/georgeey123/ghanada-works/internal/mockcms"
	"github.com/georgeey123/ghanada-works/internal/service"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal("Failed to load config", zap.Error(err))
	}

	// Backend selection happens exactly once, here. A misconfigured or
	// unreachable CMS later surfaces as request failures, never as a
	// silent switch to the demo dataset.
	var source content.Source
	backend := "mock"
	if cfg.CMS.Configured() {
		source = cms.NewClient(cfg.CMS, zlog)
		backend = "cms"
		zlog.Info("Using live CMS backend",
			zap.String("space_id", cfg.CMS.SpaceID),
			zap.String("environment", cfg.CMS.Environment))
	} else {
		source = mockcms.NewSource(cfg.App.MockDelay)
		zlog.Info("CMS credentials not configured, serving demo dataset")
	}

	store := cache.NewStore()
	contentService := service.NewContentService(source, store, zlog)
	contentHandler := handler.NewContentHandler(contentService, zlog)

	router := api.SetupRouter(contentHandler, backend)
	srv := api.NewServer(router, cfg.Server.Host, cfg.Server.Port, zlog)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Run(); err != nil {
			zlog.Error("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zlog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exited")
}
