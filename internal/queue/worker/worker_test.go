package worker

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/medixpro/medixpro/internal/jobs"
	"github.com/medixpro/medixpro/internal/notifications"
	"github.com/medixpro/medixpro/internal/queue/redisclient"
)

type fakeQueue struct {
	enqueueFn func(ctx context.Context, j jobs.Job) error
	dequeueFn func(ctx context.Context, wait time.Duration) (jobs.Job, error)
}

func (f *fakeQueue) Enqueue(ctx context.Context, j jobs.Job) error {
	if f.enqueueFn != nil {
		return f.enqueueFn(ctx, j)
	}
	return nil
}

func (f *fakeQueue) Dequeue(ctx context.Context, wait time.Duration) (jobs.Job, error) {
	if f.dequeueFn != nil {
		return f.dequeueFn(ctx, wait)
	}
	return jobs.Job{}, redisclient.ErrEmpty
}

type fakeNotifier struct {
	dispatched []notifications.DispatchAlertInput
	lowStock   []notifications.LowStockAlertInput
}

func (f *fakeNotifier) SendDispatchAlert(ctx context.Context, in notifications.DispatchAlertInput) error {
	f.dispatched = append(f.dispatched, in)
	return nil
}

func (f *fakeNotifier) SendLowStockAlert(ctx context.Context, in notifications.LowStockAlertInput) error {
	f.lowStock = append(f.lowStock, in)
	return nil
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestProcessOne_EmptyQueue(t *testing.T) {
	w := New(Config{}, &fakeQueue{}, &fakeNotifier{}, testLogger(), nil)

	processed, err := w.ProcessOne(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if processed {
		t.Fatalf("expected no job processed")
	}
}

func TestProcessOne_DispatchAlert(t *testing.T) {
	payload, err := jobs.EncodePayload(jobs.JobDispatchEmergencyCall, jobs.DispatchEmergencyCallPayload{
		CallID:        "call-1",
		PatientName:   "Jane Roe",
		Location:      "Ward 4",
		EmergencyType: "Trauma",
		Priority:      "Critical",
	})
	if err != nil {
		t.Fatalf("EncodePayload error: %v", err)
	}

	j, err := jobs.NewJob(jobs.JobDispatchEmergencyCall, payload)
	if err != nil {
		t.Fatalf("NewJob error: %v", err)
	}

	q := &fakeQueue{
		dequeueFn: func(ctx context.Context, wait time.Duration) (jobs.Job, error) {
			return j, nil
		},
	}
	n := &fakeNotifier{}

	w := New(Config{}, q, n, testLogger(), nil)

	processed, err := w.ProcessOne(context.Background())
	if err != nil {
		t.Fatalf("ProcessOne error: %v", err)
	}
	if !processed {
		t.Fatalf("expected job to be processed")
	}

	if len(n.dispatched) != 1 {
		t.Fatalf("expected 1 dispatch alert, got %d", len(n.dispatched))
	}
	if n.dispatched[0].CallID != "call-1" {
		t.Fatalf("expected callId call-1, got %s", n.dispatched[0].CallID)
	}
}

func TestProcessOne_DropsMalformedJob(t *testing.T) {
	j, err := jobs.NewJob(jobs.JobMedicineLowStock, []byte(`{not json`))
	if err != nil {
		t.Fatalf("NewJob error: %v", err)
	}

	enqueued := 0

	q := &fakeQueue{
		dequeueFn: func(ctx context.Context, wait time.Duration) (jobs.Job, error) {
			return j, nil
		},
		enqueueFn: func(ctx context.Context, j jobs.Job) error {
			enqueued++
			return nil
		},
	}

	w := New(Config{}, q, &fakeNotifier{}, testLogger(), nil)

	processed, err := w.ProcessOne(context.Background())
	if err != nil {
		t.Fatalf("ProcessOne error: %v", err)
	}
	if !processed {
		t.Fatalf("expected job to be claimed")
	}

	// malformed payload never retries
	if enqueued != 0 {
		t.Fatalf("expected no re-enqueue, got %d", enqueued)
	}
}
