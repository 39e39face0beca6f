package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"

	"github.com/octobees/restaurant-search/internal/config"
	"github.com/octobees/restaurant-search/internal/handler"
	middlewarepkg "github.com/octobees/restaurant-search/internal/middleware"
	"github.com/octobees/restaurant-search/internal/places"
	"github.com/octobees/restaurant-search/internal/router"
	"github.com/octobees/restaurant-search/internal/service"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: "2006-01-02 15:04:05",
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	var searcher places.Searcher
	if cfg.IsGoogleMapsConfigured() {
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		searcher = places.NewClient(httpClient, cfg.GoogleMapsBaseURL, cfg.GoogleMapsAPIKey,
			places.WithThrottle(cfg.PlacesRateLimit))
	} else {
		slog.Warn("GOOGLE_MAPS_API_KEY is not configured; searches will fail until it is set")
	}

	searchService := service.NewSearchService(searcher)

	handlers := router.Handlers{
		Health: handler.NewHealthHandler(cfg.IsGoogleMapsConfigured()),
		Search: handler.NewSearchHandler(searchService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	router.Register(e, handlers)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("listening", "port", cfg.Port)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
}
