package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"nexhr/internal/db"
	"nexhr/internal/domain/directory"
	"nexhr/internal/domain/reports"
	"nexhr/internal/fixtures"
	"nexhr/internal/gateway/memory"
	"nexhr/internal/gateway/postgres"
	"nexhr/internal/observability"
	"nexhr/internal/platform/config"
	"nexhr/internal/platform/metrics"
	"nexhr/internal/transport/http/api"
	analyticshandler "nexhr/internal/transport/http/handlers/analytics"
	attendancehandler "nexhr/internal/transport/http/handlers/attendance"
	authhandler "nexhr/internal/transport/http/handlers/auth"
	directoryhandler "nexhr/internal/transport/http/handlers/directory"
	"nexhr/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	var gateway directory.Gateway
	var readyCheck func(context.Context) error
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect failed", zap.Error(err))
		}
		defer pool.Close()

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool); err != nil {
				logger.Fatal("migrations failed", zap.Error(err))
			}
		}
		gateway = postgres.New(pool)
		readyCheck = pool.Ping
		logger.Info("using postgres gateway")
	} else {
		gateway = memory.New()
		readyCheck = func(context.Context) error { return nil }
		logger.Info("using in-memory gateway")
	}

	if cfg.RunSeed {
		if err := seedIfEmpty(ctx, gateway); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
	}

	store := directory.NewStore(gateway)
	if err := store.FetchAll(ctx); err != nil {
		logger.Fatal("initial load failed", zap.Error(err))
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(middleware.Recoverer(logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := readyCheck(ctx); err != nil {
			http.Error(w, "backend not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	authHandler := authhandler.NewHandler(cfg.SessionSecret, cfg.SessionTTL)
	directoryHandler := directoryhandler.NewHandler(store)
	attendanceHandler := attendancehandler.NewHandler(gateway)
	analyticsHandler := analyticshandler.NewHandler(store, reports.NewService(cfg.ReportsDir))

	router.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.SessionSecret))
			authHandler.RegisterSessionRoutes(r)
			directoryHandler.RegisterRoutes(r)
			attendanceHandler.RegisterRoutes(r)
			analyticsHandler.RegisterRoutes(r)
		})
	})

	server := &http.Server{Addr: cfg.Addr, Handler: router}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func seedIfEmpty(ctx context.Context, gateway directory.Gateway) error {
	empty, err := gateway.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	return gateway.SeedAll(ctx, fixtures.Departments(), fixtures.Employees(), fixtures.Attendance())
}
