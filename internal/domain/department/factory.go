package department

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateDepartmentRequest) Department {
	now := time.Now().UTC()

	status := req.Status
	if status == "" {
		status = "Active"
	}

	return Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Head:        req.Head,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
