package patient

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("patient not found")

type Patient struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	DOB        time.Time `json:"dob"`
	Address    string    `json:"address,omitempty"`
	BloodGroup string    `json:"bloodGroup,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreatePatientRequest struct {
	Name       string    `json:"name" binding:"required,min=2,max=120"`
	Email      string    `json:"email" binding:"omitempty,email"`
	Phone      string    `json:"phone" binding:"omitempty,max=30"`
	Gender     string    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DOB        time.Time `json:"dob" binding:"required"`
	Address    string    `json:"address" binding:"omitempty,max=300"`
	BloodGroup string    `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Status     string    `json:"status" binding:"omitempty,oneof=Active Inactive Admitted Discharged"`
}

type UpdatePatientRequest struct {
	Name       string    `json:"name" binding:"required,min=2,max=120"`
	Email      string    `json:"email" binding:"omitempty,email"`
	Phone      string    `json:"phone" binding:"omitempty,max=30"`
	Gender     string    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DOB        time.Time `json:"dob" binding:"required"`
	Address    string    `json:"address" binding:"omitempty,max=300"`
	BloodGroup string    `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Status     string    `json:"status" binding:"required,oneof=Active Inactive Admitted Discharged"`
}
