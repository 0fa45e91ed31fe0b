package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cx-tal-miterani/skybook/internal/catalog"
	"github.com/cx-tal-miterani/skybook/internal/config"
	"github.com/cx-tal-miterani/skybook/internal/flights"
	"github.com/cx-tal-miterani/skybook/internal/handlers"
	"github.com/cx-tal-miterani/skybook/internal/logger"
	"github.com/cx-tal-miterani/skybook/internal/router"
	"github.com/cx-tal-miterani/skybook/internal/service"
	"github.com/cx-tal-miterani/skybook/internal/store"
	"github.com/cx-tal-miterani/skybook/internal/validation"
	"github.com/cx-tal-miterani/skybook/internal/websocket"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, os.Stdout)
	if err != nil {
		slog.Error("failed to init logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// WebSocket hub for booking notifications
	hub := websocket.NewHub(log)
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go hub.Run(hubCtx)

	// Initialize services
	svc := service.NewService(service.Dependency{
		Accounts:        store.NewAccountStore(cfg.Auth.BcryptCost),
		Sessions:        store.NewSessionStore(),
		Flights:         flights.NewService(catalog.Default()),
		AuthValidator:   validation.NewAuthValidator(),
		SearchValidator: validation.NewSearchValidator(nil),
		Notifier:        hub,
		RequireLogin:    cfg.Booking.RequireLogin,
		Logger:          log,
	})

	h := handlers.NewHandler(svc, log)
	r := router.SetupRouter(h, hub, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         cfg.App.Server.Address,
		Handler:      r,
		ReadTimeout:  cfg.App.Server.ReadTimeout,
		WriteTimeout: cfg.App.Server.WriteTimeout,
		IdleTimeout:  cfg.App.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server listening", "app", cfg.App.Name, "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	stopHub()

	log.Info("server stopped")
}
