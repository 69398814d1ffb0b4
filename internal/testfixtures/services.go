package testfixtures

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/mergington/activities/internal/application"
	httptransport "github.com/mergington/activities/internal/http"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/persistence"
	"github.com/mergington/activities/internal/persistence/memory"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Stack bundles a fully wired activity directory for tests.
type Stack struct {
	Store   *memory.ActivityStore
	Service *application.ActivityService
	Metrics *metrics.Collector
	Handler http.Handler

	seed []persistence.Activity
}

// StackOption configures a Stack.
type StackOption func(*stackConfig)

type stackConfig struct {
	seed   []persistence.Activity
	logger *slog.Logger
}

// WithSeed replaces the built-in catalog used to populate the store.
func WithSeed(seed []persistence.Activity) StackOption {
	return func(cfg *stackConfig) {
		cfg.seed = seed
	}
}

// WithLogger overrides the discard logger.
func WithLogger(logger *slog.Logger) StackOption {
	return func(cfg *stackConfig) {
		cfg.logger = logger
	}
}

// NewStack builds a store, service, metrics collector and router seeded with
// the built-in catalog unless overridden.
func NewStack(tb testing.TB, opts ...StackOption) *Stack {
	tb.Helper()

	cfg := stackConfig{logger: DiscardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == nil {
		cfg.seed = SeedActivities()
	}

	store, err := memory.NewActivityStore(cfg.seed)
	if err != nil {
		tb.Fatalf("testfixtures: build activity store: %v", err)
	}

	collector := metrics.NewCollector()
	service := application.NewActivityServiceWithLogger(store, collector, cfg.logger)
	handler := httptransport.NewRouter(httptransport.RouterConfig{
		Activities: httptransport.NewActivityHandler(service, cfg.logger),
		Metrics:    collector.Handler(),
		Static:     true,
		Logger:     cfg.logger,
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(cfg.logger),
			httptransport.Recoverer(cfg.logger),
		},
	})

	return &Stack{
		Store:   store,
		Service: service,
		Metrics: collector,
		Handler: handler,
		seed:    cfg.seed,
	}
}

// Reset restores the store to the seed it was built with.
func (s *Stack) Reset(tb testing.TB) {
	tb.Helper()
	if err := s.Store.Reset(s.seed); err != nil {
		tb.Fatalf("testfixtures: reset activity store: %v", err)
	}
}
