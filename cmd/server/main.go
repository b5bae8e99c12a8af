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

	"github.com/mathsheet/backend/internal/api"
	"github.com/mathsheet/backend/internal/generator"
	"github.com/mathsheet/backend/internal/infrastructure/config"
	"github.com/mathsheet/backend/internal/render"
	"github.com/mathsheet/backend/internal/service"
	"github.com/mathsheet/backend/internal/worker"

	_ "github.com/mathsheet/backend/docs" // generated swagger docs
)

// @title           Mathsheet API
// @version         1.0
// @description     Printable multiplication practice worksheets.

// @host      localhost:4001
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	renderPool := worker.NewPool[[]byte](cfg.RenderWorkers, cfg.RenderWorkers*2)

	worksheets := service.NewWorksheetService(
		generator.New(),
		render.NewRenderer(),
		renderPool,
		cfg.WorksheetTitle,
		logger,
	)
	handler := api.NewHandler(worksheets, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.AllowedOrigins)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
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

	logger.Info("starting server", "address", cfg.ServerAddress, "render_workers", cfg.RenderWorkers)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	// Shutdown returns once in-flight requests finish; only then stop the pool.
	<-shutdownDone
	renderPool.Close()
}
