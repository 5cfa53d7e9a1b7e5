package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfagnish/places-api/internal/config"
	"github.com/alfagnish/places-api/internal/logger"
	"github.com/alfagnish/places-api/internal/server"
	"github.com/alfagnish/places-api/internal/store"
)

//	@title			User and Places API
//	@version		1.0.0
//	@description	An API for managing users and places
//	@BasePath		/

func main() {
	// 1. Load configuration from environment variables.
	cfg := config.Load()

	log, err := logger.New(cfg.LogDir, "places-api", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Infof("config: listen=%s seed=%t cors=%v max_body=%d",
		cfg.ListenAddr, cfg.SeedData, cfg.CORSAllowedOrigins, cfg.MaxBodyBytes)

	// 2. Create the in-memory stores.
	var users *store.UserStore
	var places *store.PlaceStore
	if cfg.SeedData {
		users = store.NewUserStore(store.DefaultUsers()...)
		places = store.NewPlaceStore(store.DefaultPlaces()...)
	} else {
		users = store.NewUserStore()
		places = store.NewPlaceStore()
	}

	// 3. Set up the chi router with all handlers.
	handler := server.New(cfg, log, users, places)

	// 4. Start the HTTP server.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("server is running on %s (docs at /api-docs)", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Infof("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("graceful shutdown error: %v", err)
	}

	log.Infof("server stopped")
}
