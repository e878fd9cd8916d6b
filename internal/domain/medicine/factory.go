package medicine

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateMedicineRequest) Medicine {
	now := time.Now().UTC()

	status := req.Status
	if status == "" {
		status = "Available"
	}

	return Medicine{
		ID:           uuid.NewString(),
		Name:         req.Name,
		GenericName:  req.GenericName,
		Category:     req.Category,
		Manufacturer: req.Manufacturer,
		Price:        req.Price,
		Stock:        req.Stock,
		Unit:         req.Unit,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
