package emergency

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateCallRequest) Call {
	now := time.Now().UTC()

	priority := req.Priority
	if priority == "" {
		priority = "High"
	}

	callTime := now
	if req.CallTime != nil {
		callTime = req.CallTime.UTC()
	}

	return Call{
		ID:            uuid.NewString(),
		PatientName:   req.PatientName,
		Phone:         req.Phone,
		Location:      req.Location,
		EmergencyType: req.EmergencyType,
		Priority:      priority,
		Status:        "Pending",
		AmbulanceID:   req.AmbulanceID,
		Notes:         req.Notes,
		CallTime:      callTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
