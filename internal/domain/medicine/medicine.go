package medicine

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("medicine not found")

// ReorderLevel is the stock threshold below which a low-stock alert job is
// enqueued for the pharmacy.
const ReorderLevel = 10

type Medicine struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	GenericName  string    `json:"genericName,omitempty"`
	Category     string    `json:"category,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	Unit         string    `json:"unit,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateMedicineRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=120"`
	GenericName  string  `json:"genericName" binding:"omitempty,max=120"`
	Category     string  `json:"category" binding:"omitempty,max=80"`
	Manufacturer string  `json:"manufacturer" binding:"omitempty,max=120"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Stock        int     `json:"stock" binding:"omitempty,min=0"`
	Unit         string  `json:"unit" binding:"omitempty,max=30"`
	Status       string  `json:"status" binding:"omitempty,oneof=Available 'Out of Stock' Discontinued"`
}

type UpdateMedicineRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=120"`
	GenericName  string  `json:"genericName" binding:"omitempty,max=120"`
	Category     string  `json:"category" binding:"omitempty,max=80"`
	Manufacturer string  `json:"manufacturer" binding:"omitempty,max=120"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Stock        int     `json:"stock" binding:"min=0"`
	Unit         string  `json:"unit" binding:"omitempty,max=30"`
	Status       string  `json:"status" binding:"required,oneof=Available 'Out of Stock' Discontinued"`
}
