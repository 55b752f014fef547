package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luckyseven/casino/internal/api"
	"github.com/luckyseven/casino/internal/config"
	"github.com/luckyseven/casino/internal/logging"
	"github.com/luckyseven/casino/pkg/games"
	playerRepo "github.com/luckyseven/casino/pkg/repositories/player"
	"github.com/luckyseven/casino/pkg/services/casino"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// The ledger lives in memory for the process lifetime
	store := playerRepo.NewMemoryStore()

	var rng games.RandomSource
	if cfg.RandomSeed != 0 {
		logger.Warn("Using fixed random seed %d; outcomes are reproducible", cfg.RandomSeed)
		rng = games.NewSeededSource(cfg.RandomSeed)
	} else {
		rng = games.NewSource()
	}

	svc := casino.NewService(store, rng, logger)
	hub := api.NewHub(logger)
	handler := api.NewHandler(svc, hub, logger)
	router := api.NewRouter(handler, cfg.AllowedOrigin)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		logger.Info("Casino server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error: %v", err)
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error: %v", err)
	}
}
