package blood

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("blood unit not found")

// DefaultShelfLife is how long a collected unit stays usable when the
// request does not carry an explicit expiry date.
const DefaultShelfLife = 35 * 24 * time.Hour

type Unit struct {
	ID             string    `json:"id"`
	UnitID         string    `json:"unitId"`
	BloodType      string    `json:"bloodType"`
	Quantity       int       `json:"quantity"`
	CollectionDate time.Time `json:"collectionDate"`
	ExpiryDate     time.Time `json:"expiryDate"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateUnitRequest struct {
	BloodType      string     `json:"bloodType" binding:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Quantity       int        `json:"quantity" binding:"required,min=1"`
	CollectionDate *time.Time `json:"collectionDate" binding:"omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate" binding:"omitempty"`
	Notes          string     `json:"notes" binding:"omitempty,max=500"`
}

type UpdateUnitRequest struct {
	Quantity int    `json:"quantity" binding:"required,min=0"`
	Status   string `json:"status" binding:"required,oneof=available reserved used expired"`
	Notes    string `json:"notes" binding:"omitempty,max=500"`
}
