package staff

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("staff member not found")
	ErrEmailInUse = errors.New("staff email already in use")
)

type Staff struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Gender      string    `json:"gender,omitempty"`
	Address     string    `json:"address,omitempty"`
	Role        string    `json:"role"`
	Department  string    `json:"department,omitempty"`
	JoinedDate  time.Time `json:"joinedDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateStaffRequest struct {
	FirstName   string    `json:"firstName" binding:"required,min=2,max=80"`
	LastName    string    `json:"lastName" binding:"required,min=2,max=80"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone" binding:"omitempty,max=30"`
	DateOfBirth time.Time `json:"dateOfBirth" binding:"required"`
	Gender      string    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address     string    `json:"address" binding:"omitempty,max=300"`
	Role        string    `json:"role" binding:"required,min=2,max=80"`
	Department  string    `json:"department" binding:"omitempty,max=120"`
	JoinedDate  time.Time `json:"joinedDate" binding:"omitempty"`
	Status      string    `json:"status" binding:"omitempty,oneof=Active Inactive 'On Leave'"`
}

type UpdateStaffRequest struct {
	FirstName   string    `json:"firstName" binding:"required,min=2,max=80"`
	LastName    string    `json:"lastName" binding:"required,min=2,max=80"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone" binding:"omitempty,max=30"`
	DateOfBirth time.Time `json:"dateOfBirth" binding:"required"`
	Gender      string    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address     string    `json:"address" binding:"omitempty,max=300"`
	Role        string    `json:"role" binding:"required,min=2,max=80"`
	Department  string    `json:"department" binding:"omitempty,max=120"`
	JoinedDate  time.Time `json:"joinedDate" binding:"omitempty"`
	Status      string    `json:"status" binding:"required,oneof=Active Inactive 'On Leave'"`
}
