package room

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateRoomRequest) Room {
	now := time.Now().UTC()

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 1
	}
	status := req.Status
	if status == "" {
		status = "Available"
	}

	return Room{
		ID:         uuid.NewString(),
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Department: req.Department,
		Floor:      req.Floor,
		Capacity:   capacity,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func NewAllotmentFromCreateRequest(req CreateAllotmentRequest) Allotment {
	now := time.Now().UTC()

	allotted := now
	if req.AllotmentDate != nil {
		allotted = req.AllotmentDate.UTC()
	}

	return Allotment{
		ID:                    uuid.NewString(),
		RoomID:                req.RoomID,
		PatientID:             req.PatientID,
		PatientName:           req.PatientName,
		AttendingDoctor:       req.AttendingDoctor,
		AllotmentDate:         allotted,
		ExpectedDischargeDate: req.ExpectedDischargeDate,
		Status:                "Active",
		Notes:                 req.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
