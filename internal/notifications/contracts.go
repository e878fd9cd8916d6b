package notifications

import "context"

type DispatchAlertInput struct {
	CallID        string
	PatientName   string
	Location      string
	EmergencyType string
	Priority      string
}

type LowStockAlertInput struct {
	MedicineID string
	Name       string
	Stock      int
}

type Notifier interface {
	SendDispatchAlert(ctx context.Context, input DispatchAlertInput) error
	SendLowStockAlert(ctx context.Context, input LowStockAlertInput) error
}
