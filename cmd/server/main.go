package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/drivespec/backend/config"
	httpDelivery "github.com/drivespec/backend/internal/delivery/http"
	"github.com/drivespec/backend/internal/infrastructure/cache"
	"github.com/drivespec/backend/internal/infrastructure/scraper"
	"github.com/drivespec/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Environment == "development" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.Info("Starting DriveSpec Backend v1.0.0")
	logrus.Infof("Environment: %s", cfg.Server.Environment)
	logrus.Infof("Port: %s", cfg.Server.Port)
	logrus.Infof("Cache TTL: %s", cfg.Cache.TTL)
	logrus.Infof("Manufacturers registered: %d", len(cfg.Manufacturers))

	// Initialize infrastructure dependencies
	productCache := cache.NewMemory(cfg.Cache.TTL)

	fetcher := scraper.NewFetcher(scraper.FetcherConfig{
		UserAgent:         cfg.Scraper.UserAgent,
		MaxRetries:        cfg.Scraper.MaxRetries,
		AttemptTimeout:    cfg.Scraper.AttemptTimeout,
		RequestsPerMinute: cfg.Scraper.RequestsPerMinute,
	})
	extractor := scraper.NewExtractor()

	// Initialize usecase layer
	productService := usecase.NewProductService(
		productCache,
		fetcher,
		extractor,
		cfg.Manufacturers,
	)
	comparisonService := usecase.NewComparisonService()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productService, comparisonService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logrus.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
