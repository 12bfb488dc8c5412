package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-lookup/api"
	"weather-lookup/datasource"
	"weather-lookup/recent"
	"weather-lookup/search"
	"weather-lookup/storage"
	"weather-lookup/theme"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	dev := flag.Bool("dev", false, "Use human-readable log output")
	flag.Parse()

	log := newLogger(*dev)
	slog.SetDefault(log)

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", "error", err)
	}

	// Load configuration, falling back to defaults when the file is absent
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Warn("configuration not readable, using defaults", "path", *configFile, "error", err)
		config = datasource.DefaultConfig()
	}

	// The API key comes only from the environment and is never logged
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		log.Error("OPENWEATHER_API_KEY is not set")
		os.Exit(1)
	}

	// Open durable storage for recent searches and the theme preference
	kv, err := storage.NewSQLite(config.StoragePath)
	if err != nil {
		log.Error("failed to open storage", "path", config.StoragePath, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	// Wire the core: provider -> controller -> API server
	provider := datasource.NewOpenWeatherMapProvider(
		apiKey,
		config.OpenWeatherMap.BaseURL,
		time.Duration(config.RequestTimeoutSeconds)*time.Second,
	)
	recents := recent.NewStore(kv)
	controller := search.NewController(provider, recents, search.Config{
		StrictForecast: config.StrictForecast,
	}, log)
	defer controller.Close()
	themes := theme.NewManager(kv, config.PreferDark)

	server := api.NewServer(controller, themes, *port, log)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	log.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("error during shutdown", "error", err)
	}

	log.Info("shutdown complete")
}

// newLogger builds the process logger: human-readable in dev, JSON
// otherwise
func newLogger(dev bool) *slog.Logger {
	if dev {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
