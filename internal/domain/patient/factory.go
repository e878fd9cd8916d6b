package patient

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreatePatientRequest) Patient {
	now := time.Now().UTC()

	status := req.Status
	if status == "" {
		status = "Active"
	}

	return Patient{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Gender:     req.Gender,
		DOB:        req.DOB,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
