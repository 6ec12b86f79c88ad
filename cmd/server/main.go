package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/alphavantage"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/api"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/config"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/flash"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/service"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/view"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create market data client
	avClient := alphavantage.NewFinanceClient(alphavantage.Config{
		BaseURL:       cfg.AlphaVantage.BaseURL,
		APIKey:        cfg.AlphaVantage.APIKey,
		Timeout:       cfg.AlphaVantage.Timeout,
		MaxConcurrent: cfg.AlphaVantage.MaxConcurrent,
	})

	log.Printf("Using market data provider: %s", cfg.AlphaVantage.BaseURL)

	// Create services
	systemService := service.NewSystemService(cfg)
	chartService := service.NewChartService(avClient, time.Now)

	views, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	flashes := flash.NewStore(cfg.Session.SecretKey)

	// Create router
	router := api.NewRouter(systemService, chartService, flashes, views, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AlphaVantage.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
