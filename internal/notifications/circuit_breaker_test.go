package notifications

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeNotifier struct {
	dispatchFn func(ctx context.Context, in DispatchAlertInput) error
	lowStockFn func(ctx context.Context, in LowStockAlertInput) error
}

func (f *fakeNotifier) SendDispatchAlert(ctx context.Context, in DispatchAlertInput) error {
	if f.dispatchFn != nil {
		return f.dispatchFn(ctx, in)
	}
	return nil
}

func (f *fakeNotifier) SendLowStockAlert(ctx context.Context, in LowStockAlertInput) error {
	if f.lowStockFn != nil {
		return f.lowStockFn(ctx, in)
	}
	return nil
}

func TestProtectedNotifier_OpensAfterThreshold(t *testing.T) {
	boom := errors.New("provider down")

	inner := &fakeNotifier{
		dispatchFn: func(ctx context.Context, in DispatchAlertInput) error {
			return boom
		},
	}

	p := NewProtectedNotifier(inner, ProtectedNotifierConfig{
		FailureThreshold: 2,
		Cooldown:         time.Hour,
	})

	in := DispatchAlertInput{CallID: "c1", Location: "somewhere"}

	for i := 0; i < 2; i++ {
		if err := p.SendDispatchAlert(context.Background(), in); !errors.Is(err, boom) {
			t.Fatalf("attempt %d: expected provider error, got %v", i, err)
		}
	}

	// circuit is open now, calls fail fast without reaching the provider
	if err := p.SendDispatchAlert(context.Background(), in); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestProtectedNotifier_ClosedOnSuccess(t *testing.T) {
	inner := &fakeNotifier{}

	p := NewProtectedNotifier(inner, ProtectedNotifierConfig{})

	if err := p.SendLowStockAlert(context.Background(), LowStockAlertInput{MedicineID: "m1"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
