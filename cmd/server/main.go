package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hamready/backend/internal/api"
	"github.com/hamready/backend/internal/domain/readiness"
	"github.com/hamready/backend/internal/infrastructure/config"
	"github.com/hamready/backend/internal/service"
	"github.com/hamready/backend/internal/store"

	_ "github.com/hamready/backend/docs" // generated swagger docs
)

// @title           HamReady API
// @version         1.0
// @description     Ham radio exam study companion: record practice attempts and track exam readiness per subelement.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	readinessCfg, err := readiness.LoadConfig(cfg.ReadinessConfigPath)
	if err != nil {
		logger.Error("invalid readiness config", "error", err)
		os.Exit(1)
	}
	logger.Info("readiness config loaded", "version", readinessCfg.Version)

	readinessSvc := service.NewReadinessService(db, readinessCfg, logger)
	handler := api.NewHandler(db, readinessSvc, logger)

	// ── Periodic recompute ──────────────────────────────────────────
	if cfg.RecomputeInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.RecomputeInterval)
			defer ticker.Stop()
			for range ticker.C {
				if failures, err := readinessSvc.RecomputeAll(context.Background()); err != nil {
					logger.Error("periodic recompute failed", "error", err)
				} else if failures > 0 {
					logger.Warn("periodic recompute finished with failures", "failures", failures)
				}
			}
		}()
		logger.Info("periodic recompute enabled", "interval", cfg.RecomputeInterval)
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
