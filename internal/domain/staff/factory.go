package staff

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateStaffRequest) Staff {
	now := time.Now().UTC()

	joined := req.JoinedDate
	if joined.IsZero() {
		joined = now
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}

	return Staff{
		ID:          uuid.NewString(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		Role:        req.Role,
		Department:  req.Department,
		JoinedDate:  joined,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
