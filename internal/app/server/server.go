package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"tripboard/internal/domain/trips"
	"tripboard/internal/platform/config"
	"tripboard/internal/platform/db"
	"tripboard/internal/platform/metrics"
	dashboardhandler "tripboard/internal/transport/http/handlers/dashboard"
	exportshandler "tripboard/internal/transport/http/handlers/exports"
	tripshandler "tripboard/internal/transport/http/handlers/trips"
	"tripboard/internal/transport/http/middleware"
	"tripboard/internal/transport/http/shared"
	"tripboard/internal/transport/http/view"
	"tripboard/web"
)

const readyTimeout = 2 * time.Second

// TripService is everything the HTTP layer needs from the trips domain.
type TripService interface {
	tripshandler.Service
	dashboardhandler.Service
	exportshandler.Service
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterDeps struct {
	Config  config.Config
	Logger  *slog.Logger
	Service TripService
	Ready   Pinger
	Metrics *metrics.Collector
}

type App struct {
	Config  config.Config
	DB      *db.Pool
	Router  http.Handler
	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// New connects to the database, applies migrations and the demo seed when
// configured, and builds the router.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router, err := NewRouter(RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Service: trips.NewService(trips.NewStore(pool)),
		Ready:   pool,
		Metrics: collector,
	})
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &App{
		Config:  cfg,
		DB:      pool,
		Router:  router,
		Logger:  logger,
		Metrics: collector,
	}, nil
}

// NewRouter wires middleware, pages, the JSON API, exports and the
// operational endpoints.
func NewRouter(deps RouterDeps) (http.Handler, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := view.New(web.Assets)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	static, err := fs.Sub(web.Assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	pages := shared.PageConfig{Size: cfg.PageSize, MaxSize: cfg.MaxPageSize, Window: cfg.PageWindow}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, deps.Metrics))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction(), cfg.ChartCDNURL))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if deps.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := deps.Ready.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if deps.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	// Operational routes above stay outside the rate limit.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

		r.Route("/api/v1", func(api chi.Router) {
			tripshandler.NewHandler(deps.Service, pages).RegisterRoutes(api)
		})

		exportshandler.NewHandler(deps.Service, deps.Metrics).RegisterRoutes(r)
		dashboardhandler.NewHandler(deps.Service, renderer, pages, cfg.ChartCDNURL).RegisterRoutes(r)
	})

	return router, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most Config.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("tripboard server listening", "addr", a.Config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down", "timeout", a.Config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
