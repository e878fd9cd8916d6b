package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/medixpro/medixpro/internal/jobs"
	"github.com/medixpro/medixpro/internal/notifications"
	"github.com/medixpro/medixpro/internal/observability"
	"github.com/medixpro/medixpro/internal/queue/redisclient"
)

// Queue is the slice of the redis client the worker needs.
type Queue interface {
	Enqueue(ctx context.Context, j jobs.Job) error
	Dequeue(ctx context.Context, wait time.Duration) (jobs.Job, error)
}

type Config struct {
	PollTimeout time.Duration
}

type Worker struct {
	cfg      Config
	queue    Queue
	notifier notifications.Notifier
	log      *slog.Logger
	prom     *observability.Prom
	metrics  *observability.JobMetrics

	readyMu sync.RWMutex
	ready   bool
}

func New(cfg Config, queue Queue, notifier notifications.Notifier, log *slog.Logger, prom *observability.Prom) *Worker {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 5 * time.Second
	}

	return &Worker{
		cfg:      cfg,
		queue:    queue,
		notifier: notifier,
		log:      log,
		prom:     prom,
		metrics:  observability.NewJobMetrics(),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	w.setReady(true)
	defer w.setReady(false)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("worker received shutdown signal")
			w.logSnapshot()
			return nil
		default:
		}

		if _, err := w.ProcessOne(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			w.log.Error("process error", "error", err)
		}
	}
}

// ProcessOne blocks for up to the poll timeout waiting for a job, then
// executes it. It reports whether a job was claimed.
func (w *Worker) ProcessOne(ctx context.Context) (bool, error) {
	j, err := w.queue.Dequeue(ctx, w.cfg.PollTimeout)

	if err != nil {
		if errors.Is(err, redisclient.ErrEmpty) {
			return false, nil
		}

		return false, err
	}

	w.metrics.IncClaimed()
	w.log.Info("claimed job", "job_id", j.ID, "type", string(j.Type), "attempt", j.Attempts)

	if w.prom != nil {
		w.prom.JobsInFlight.Inc()
		defer w.prom.JobsInFlight.Dec()
	}

	start := time.Now()
	err = w.execute(ctx, j)
	elapsed := time.Since(start)

	w.metrics.ObserveDuration(elapsed)

	if err != nil {
		w.handleFailure(ctx, j, err, elapsed)
		return true, nil
	}

	w.metrics.IncDone()
	w.observeResult(j, "done", elapsed)

	return true, nil
}

func (w *Worker) execute(ctx context.Context, j jobs.Job) error {
	payload, err := jobs.DecodePayload(j)

	if err != nil {
		return err
	}

	if err := jobs.ValidatePayload(j.Type, payload); err != nil {
		return err
	}

	switch p := payload.(type) {
	case jobs.DispatchEmergencyCallPayload:
		return w.notifier.SendDispatchAlert(ctx, notifications.DispatchAlertInput{
			CallID:        p.CallID,
			PatientName:   p.PatientName,
			Location:      p.Location,
			EmergencyType: p.EmergencyType,
			Priority:      p.Priority,
		})

	case jobs.MedicineLowStockPayload:
		return w.notifier.SendLowStockAlert(ctx, notifications.LowStockAlertInput{
			MedicineID: p.MedicineID,
			Name:       p.Name,
			Stock:      p.Stock,
		})

	default:
		return jobs.ErrInvalidJobType
	}
}

// handleFailure re-enqueues a failed job with backoff until its tries are
// exhausted. Permanently malformed jobs are dropped immediately.
func (w *Worker) handleFailure(ctx context.Context, j jobs.Job, execErr error, elapsed time.Duration) {
	if errors.Is(execErr, jobs.ErrInvalidJobType) || errors.Is(execErr, jobs.ErrInvalidJobPayload) || errors.Is(execErr, jobs.ErrPayloadTypeMismatch) {
		w.metrics.IncFailed()
		w.observeResult(j, "failed", elapsed)
		w.log.Error("dropping malformed job", "job_id", j.ID, "type", string(j.Type), "error", execErr)
		return
	}

	j.Attempts++

	if j.Attempts >= j.MaxTries {
		w.metrics.IncFailed()
		w.observeResult(j, "failed", elapsed)
		w.log.Error("job failed permanently", "job_id", j.ID, "type", string(j.Type), "attempts", j.Attempts, "error", execErr)
		return
	}

	msg := execErr.Error()
	j.LastError = &msg
	j.Status = jobs.JobPending
	j.UpdatedAt = time.Now().UTC()

	delay := ExponentialBackoff(j.Attempts - 1)

	w.log.Warn("retrying job", "job_id", j.ID, "type", string(j.Type), "attempt", j.Attempts, "delay", delay.String(), "error", execErr)

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return
	}

	if err := w.queue.Enqueue(ctx, j); err != nil {
		w.metrics.IncFailed()
		w.log.Error("re-enqueue failed", "job_id", j.ID, "error", err)
		return
	}

	w.metrics.IncRetried()
	w.observeResult(j, "retry", elapsed)
}

func (w *Worker) observeResult(j jobs.Job, result string, elapsed time.Duration) {
	if w.prom == nil {
		return
	}

	w.prom.JobResults.WithLabelValues(string(j.Type), result).Inc()
	w.prom.JobDuration.WithLabelValues(string(j.Type), result).Observe(elapsed.Seconds())
}

func (w *Worker) logSnapshot() {
	s := w.metrics.Snapshot()

	w.log.Info("worker totals",
		"claimed", s.Claimed,
		"done", s.Done,
		"failed", s.Failed,
		"retried", s.Retried,
		"avg_duration", s.AverageDuration.String(),
		"max_duration", s.MaxDuration.String(),
	)
}

func (w *Worker) setReady(v bool) {
	w.readyMu.Lock()
	w.ready = v
	w.readyMu.Unlock()
}
