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

	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/notifications"
	"github.com/medixpro/medixpro/internal/observability"
	"github.com/medixpro/medixpro/internal/queue/redisclient"
	"github.com/medixpro/medixpro/internal/queue/worker"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	defer stop()

	queue := redisclient.New(redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		QueueKey: cfg.JobQueueKey,
	})

	defer queue.Close()

	if err := queue.Ping(ctx); err != nil {
		log.Error("redis connect failed", "err", err)
		os.Exit(1)
	}

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	notifier := notifications.NewProtectedNotifier(
		notifications.NewLogNotifier(),
		notifications.ProtectedNotifierConfig{},
	)

	w := worker.New(worker.Config{
		PollTimeout: 5 * time.Second,
	}, queue, notifier, log, prom)

	// health probes on a side port
	healthSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port+1),
		Handler:           w.HealthHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("health server failed", "err", err)
		}
	}()

	log.Info("worker has started", "queue", cfg.JobQueueKey)

	if err := w.Run(ctx); err != nil {
		log.Error("worker stopped with error", "err", err)
	}

	shutdownCtx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()
	_ = healthSrv.Shutdown(shutdownCtx)

	log.Info("worker shutdown complete")
}
