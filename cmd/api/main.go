package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medixpro/medixpro/internal/auth"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/db"
	httpx "github.com/medixpro/medixpro/internal/http"
	"github.com/medixpro/medixpro/internal/observability"
	"github.com/medixpro/medixpro/internal/queue/redisclient"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// tracing is opt-in via the OTLP endpoint
	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(ctx, "medixpro-api", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		defer func() {
			shutdownCtx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdownTracer(shutdownCtx)
		}()
	}

	pool, err := db.NewPool(cfg.DBURL)

	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	if err := db.EnsureAdminUser(ctx, pool, cfg); err != nil {
		log.Error("admin seeding failed", "err", err)
		os.Exit(1)
	}

	queue := redisclient.New(redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		QueueKey: cfg.JobQueueKey,
	})

	defer queue.Close()

	if err := queue.Ping(ctx); err != nil {
		// the API can serve without the queue; alerts degrade to logs
		log.Warn("redis unreachable at startup", "err", err)
	}

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	jwtManager := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.SessionTTLDays)*24*time.Hour)

	router := httpx.NewRouter(httpx.RouterDeps{
		Cfg:   cfg,
		Log:   log,
		Pool:  pool,
		Queue: queue,
		Prom:  prom,
		JWT:   jwtManager,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("server shutting down")

	shutdownCtx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
		return
	}

	log.Info("shutdown complete")
}
