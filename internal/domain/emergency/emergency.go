package emergency

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("emergency call not found")

type Call struct {
	ID            string    `json:"id"`
	PatientName   string    `json:"patientName"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location"`
	EmergencyType string    `json:"emergencyType"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	AmbulanceID   *string   `json:"ambulanceId"`
	Notes         string    `json:"notes,omitempty"`
	CallTime      time.Time `json:"callTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateCallRequest struct {
	PatientName   string     `json:"patientName" binding:"required,min=2,max=120"`
	Phone         string     `json:"phone" binding:"omitempty,max=30"`
	Location      string     `json:"location" binding:"required,max=300"`
	EmergencyType string     `json:"emergencyType" binding:"required,max=80"`
	Priority      string     `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	AmbulanceID   *string    `json:"ambulanceId" binding:"omitempty,uuid"`
	Notes         string     `json:"notes" binding:"omitempty,max=1000"`
	CallTime      *time.Time `json:"callTime" binding:"omitempty"`
}

type UpdateCallRequest struct {
	PatientName   string  `json:"patientName" binding:"required,min=2,max=120"`
	Phone         string  `json:"phone" binding:"omitempty,max=30"`
	Location      string  `json:"location" binding:"required,max=300"`
	EmergencyType string  `json:"emergencyType" binding:"required,max=80"`
	Priority      string  `json:"priority" binding:"required,oneof=Low Medium High Critical"`
	Status        string  `json:"status" binding:"required,oneof=Pending Dispatched 'In Progress' Completed Cancelled"`
	AmbulanceID   *string `json:"ambulanceId" binding:"omitempty,uuid"`
	Notes         string  `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateStatusRequest struct {
	Status      string  `json:"status" binding:"required,oneof=Pending Dispatched 'In Progress' Completed Cancelled"`
	AmbulanceID *string `json:"ambulanceId" binding:"omitempty,uuid"`
}
