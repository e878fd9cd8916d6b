package blood

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateUnitRequest) Unit {
	now := time.Now().UTC()

	collected := now
	if req.CollectionDate != nil {
		collected = req.CollectionDate.UTC()
	}

	expiry := collected.Add(DefaultShelfLife)
	if req.ExpiryDate != nil {
		expiry = req.ExpiryDate.UTC()
	}

	return Unit{
		ID:             uuid.NewString(),
		UnitID:         fmt.Sprintf("BU%d", now.UnixMilli()),
		BloodType:      req.BloodType,
		Quantity:       req.Quantity,
		CollectionDate: collected,
		ExpiryDate:     expiry,
		Status:         "available",
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
