package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mergington/activities/internal/application"
	"github.com/mergington/activities/internal/catalog"
	"github.com/mergington/activities/internal/config"
	httptransport "github.com/mergington/activities/internal/http"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/persistence/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to build logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, err := newHandler(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build activity directory", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("activities API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
	logger.Info("activities API stopped")
}

// newHandler seeds the directory from the configured catalog and wires the
// service, metrics and router together.
func newHandler(ctx context.Context, cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	seed, err := catalog.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	store, err := memory.NewActivityStore(seed)
	if err != nil {
		return nil, fmt.Errorf("seed activity store: %w", err)
	}

	collector := metrics.NewCollector()
	service := application.NewActivityServiceWithLogger(store, collector, logger)
	if err := service.SyncParticipantGauges(ctx); err != nil {
		return nil, fmt.Errorf("sync participant gauges: %w", err)
	}
	logger.Info("activity directory seeded", "activities", len(seed), "seed_file", cfg.SeedFile)

	return httptransport.NewRouter(httptransport.RouterConfig{
		Activities: httptransport.NewActivityHandler(service, logger),
		Metrics:    collector.Handler(),
		Static:     true,
		Logger:     logger,
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
			httptransport.Recoverer(logger),
		},
	}), nil
}
