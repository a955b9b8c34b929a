package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/iJaack/chain-guru/internal/config"
	"github.com/iJaack/chain-guru/internal/handler"
	"github.com/iJaack/chain-guru/internal/middleware"
	"github.com/iJaack/chain-guru/internal/monitor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := monitor.NewClient(cfg.ChainsAPIURL)
	engine := monitor.NewEngine(client, logger, cfg.RefreshInterval)
	go engine.Run(ctx)
	logger.Info("refresh engine started", "upstream", cfg.ChainsAPIURL, "interval", cfg.RefreshInterval.String())

	r := chi.NewRouter()
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.FrontendOrigin))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", handler.Health())
	r.Get("/readyz", handler.EngineReady(engine))

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", handler.Dashboard(engine))
		r.Get("/graveyard", handler.Graveyard(engine))
		r.Get("/stats", handler.Stats(engine))
		r.Get("/status", handler.EngineStatus(engine))
		r.Post("/view", handler.SetView(engine))
		r.Post("/filter", handler.SetFilter(engine))
		r.Post("/sort", handler.SetSort(engine))
		r.Put("/pricing", handler.UpdatePricing(engine))
		r.Post("/refresh", handler.Refresh(engine))
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gracefully")
	engine.Close()
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
