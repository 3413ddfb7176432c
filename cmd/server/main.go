package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festival-lineup/config"
	"festival-lineup/internal/database"
	"festival-lineup/internal/handler"
	"festival-lineup/internal/middleware"
	"festival-lineup/internal/repository"
	"festival-lineup/internal/service"
	"festival-lineup/internal/web"
	"festival-lineup/pkg/logger"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("server")

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		var err error
		tp, err = middleware.InitTracing(ctx, cfg)
		if err != nil {
			log.Warn("Tracing disabled", zap.Error(err))
		} else {
			log.Info("Tracing enabled", zap.String("endpoint", cfg.Tracing.Endpoint))
		}
	}

	store, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	eventRepo, userRepo, err := repository.NewFromStore(store)
	if err != nil {
		log.Fatal("Failed to build repositories", zap.Error(err))
	}

	pages, err := web.NewPages()
	if err != nil {
		log.Fatal("Failed to load web assets", zap.Error(err))
	}

	health := handler.NewHealthHandler(store)
	router := newRouter(cfg, routes{
		events: handler.NewEventHandler(service.NewEventService(eventRepo)),
		users:  handler.NewUserHandler(service.NewUserService(userRepo)),
		health: health,
		pages:  pages,
	}, tp != nil)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr), zap.String("driver", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("Shutting down")
	health.MarkShuttingDown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error("Store close", zap.Error(err))
	}
	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error("Tracer shutdown", zap.Error(err))
		}
	}
	log.Info("Server stopped")
}
