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

	"github.com/joho/godotenv"

	"fantasy-projection/internal/config"
	"fantasy-projection/internal/logger"
	"fantasy-projection/internal/query"
	"fantasy-projection/internal/query/queryobs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = logger.Shutdown(ctx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", configPath)
		return err
	}

	// No partial-data mode: without both relations there is nothing to serve.
	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load dataset", err)
		return err
	}

	runner := queryobs.Wrap(query.NewEngine(ds))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      withRequestLog(newMux(runner)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info(ctx, "🏏 Fantasy Projection is running", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithErr(ctx, "Server stopped", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
