package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lottolab/scratchoff-data/internal/config"
	"github.com/lottolab/scratchoff-data/internal/model"
	"github.com/lottolab/scratchoff-data/internal/refresh"
	"github.com/lottolab/scratchoff-data/internal/server"
	"github.com/lottolab/scratchoff-data/internal/session"
	"github.com/lottolab/scratchoff-data/internal/store"
	"github.com/lottolab/scratchoff-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/dashboard.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present so ${NEO4J_*} placeholders in the config file
	// resolve from local secrets.
	_ = godotenv.Load()

	logger.Info("starting dashboard",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"neo4j_uri", cfg.Neo4j.URI,
		"port", cfg.Server.Port,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	st, err := store.NewNeo4jStore(cfg.Neo4j, store.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create store", "error", err)
		os.Exit(1)
	}

	initialFilter := model.Filter{
		MinTicketPrice: cfg.Filters.MinTicketPrice,
		MaxTicketPrice: cfg.Filters.MaxTicketPrice,
		Ending:         model.EndingInclude,
	}

	// A connectivity failure is surfaced once here; the session still
	// serves (empty tables) so the dashboard has a state to render.
	sess, err := session.Open(ctx, st, initialFilter, logger)
	if err != nil {
		logger.Error("backend unreachable, serving without data", "error", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := sess.Close(closeCtx); err != nil {
			logger.Error("failed to close session", "error", err)
		}
	}()

	refresher := refresh.New(refresh.Config{Interval: cfg.Server.RefreshInterval}, sess, logger)
	if err := refresher.Start(ctx); err != nil {
		logger.Error("failed to start refresher", "error", err)
		os.Exit(1)
	}

	srv := server.New(*cfg, sess, logger)
	httpServer := srv.HTTPServer()

	go func() {
		logger.Info("serving dashboard api", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	if err := refresher.Stop(shutdownCtx); err != nil {
		logger.Error("refresher shutdown error", "error", err)
	}

	logger.Info("dashboard stopped")
}
