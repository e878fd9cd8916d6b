package ambulance

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateAmbulanceRequest) Ambulance {
	now := time.Now().UTC()

	status := req.Status
	if status == "" {
		status = "Available"
	}

	return Ambulance{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		DriverName:         req.DriverName,
		DriverPhone:        req.DriverPhone,
		VehicleType:        req.VehicleType,
		Status:             status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
