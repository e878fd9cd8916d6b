package department

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("department not found")

type Department struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Head        string    `json:"head,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Head        string `json:"head" binding:"omitempty,max=120"`
	Status      string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Head        string `json:"head" binding:"omitempty,max=120"`
	Status      string `json:"status" binding:"required,oneof=Active Inactive"`
}
