package notifications

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) SendDispatchAlert(ctx context.Context, in DispatchAlertInput) error {
	if err := simulateProvider(ctx); err != nil {
		return err
	}

	log.Printf("notification.dispatch_alert call=%s patient=%s location=%s type=%s priority=%s",
		in.CallID, in.PatientName, in.Location, in.EmergencyType, in.Priority,
	)
	return nil
}

func (n *LogNotifier) SendLowStockAlert(ctx context.Context, in LowStockAlertInput) error {
	if err := simulateProvider(ctx); err != nil {
		return err
	}

	log.Printf("notification.low_stock medicine=%s name=%s stock=%d",
		in.MedicineID, in.Name, in.Stock,
	)
	return nil
}

func simulateProvider(ctx context.Context) error {
	// Optional: simulate slow provider
	if msStr := os.Getenv("NOTIFIER_SLEEP_MS"); msStr != "" {
		ms, _ := strconv.Atoi(msStr)
		if ms > 0 {
			select {
			case <-time.After(time.Duration(ms) * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	// Optional: simulate provider outage
	if os.Getenv("NOTIFIER_FAIL") == "1" {
		return fmt.Errorf("provider down (simulated)")
	}

	return nil
}
