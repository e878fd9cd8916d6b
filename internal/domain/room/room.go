package room

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("room not found")
	ErrAllotmentNotFound = errors.New("room allotment not found")
	ErrRoomOccupied      = errors.New("room is already occupied")
)

type Room struct {
	ID         string    `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	RoomType   string    `json:"roomType"`
	Department string    `json:"department"`
	Floor      string    `json:"floor,omitempty"`
	Capacity   int       `json:"capacity"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required,max=20"`
	RoomType   string `json:"roomType" binding:"required,oneof=General 'Semi-Private' Private ICU Emergency"`
	Department string `json:"department" binding:"required,max=100"`
	Floor      string `json:"floor" binding:"omitempty,max=20"`
	Capacity   int    `json:"capacity" binding:"omitempty,min=1"`
	Status     string `json:"status" binding:"omitempty,oneof=Available Occupied Maintenance"`
}

type UpdateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required,max=20"`
	RoomType   string `json:"roomType" binding:"required,oneof=General 'Semi-Private' Private ICU Emergency"`
	Department string `json:"department" binding:"required,max=100"`
	Floor      string `json:"floor" binding:"omitempty,max=20"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	Status     string `json:"status" binding:"required,oneof=Available Occupied Maintenance"`
}

type Allotment struct {
	ID                    string     `json:"id"`
	RoomID                string     `json:"roomId"`
	PatientID             string     `json:"patientId"`
	PatientName           string     `json:"patientName"`
	AttendingDoctor       string     `json:"attendingDoctor"`
	AllotmentDate         time.Time  `json:"allotmentDate"`
	ExpectedDischargeDate *time.Time `json:"expectedDischargeDate"`
	DischargeDate         *time.Time `json:"dischargeDate"`
	Status                string     `json:"status"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type CreateAllotmentRequest struct {
	RoomID                string     `json:"roomId" binding:"required,uuid"`
	PatientID             string     `json:"patientId" binding:"required,uuid"`
	PatientName           string     `json:"patientName" binding:"required,min=2,max=120"`
	AttendingDoctor       string     `json:"attendingDoctor" binding:"required,max=120"`
	AllotmentDate         *time.Time `json:"allotmentDate" binding:"omitempty"`
	ExpectedDischargeDate *time.Time `json:"expectedDischargeDate" binding:"omitempty"`
	Notes                 string     `json:"notes" binding:"omitempty,max=500"`
}

type UpdateAllotmentRequest struct {
	ExpectedDischargeDate *time.Time `json:"expectedDischargeDate" binding:"omitempty"`
	DischargeDate         *time.Time `json:"dischargeDate" binding:"omitempty"`
	Status                string     `json:"status" binding:"required,oneof=Active Discharged Transferred"`
	Notes                 string     `json:"notes" binding:"omitempty,max=500"`
}
