package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/ocr-service/internal/classifier"
	"github.com/BerylCAtieno/ocr-service/internal/config"
	"github.com/BerylCAtieno/ocr-service/internal/extractor"
	"github.com/BerylCAtieno/ocr-service/internal/router"
	"github.com/BerylCAtieno/ocr-service/internal/services"
	"github.com/BerylCAtieno/ocr-service/internal/storage"
	"github.com/BerylCAtieno/ocr-service/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize OCR engine, shared by all requests
	engine, err := extractor.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize OCR engine", "engine", cfg.OCREngine, "error", err)
	}
	defer engine.Close()

	tempStorage, err := storage.NewLocalStorage(cfg.TempDir)
	if err != nil {
		logger.Fatal("Failed to initialize temp storage", "dir", cfg.TempDir, "error", err)
	}

	ocrService := services.NewService(tempStorage, engine, classifier.NewStub(), cfg.OCRTimeout, logger)

	// Setup HTTP router
	handler := router.NewRouter(ocrService, logger, cfg.MultipartMemory)

	// No WriteTimeout; extraction time is bounded by OCR_TIMEOUT.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server",
			"addr", cfg.Addr(),
			"engine", cfg.OCREngine,
			"language", cfg.OCRLanguage,
			"workers", engine.Size())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
