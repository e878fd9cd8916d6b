package ambulance

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("ambulance not found")
	ErrRegistrationInUse = errors.New("registration number already in use")
)

type Ambulance struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registrationNumber"`
	DriverName         string    `json:"driverName,omitempty"`
	DriverPhone        string    `json:"driverPhone,omitempty"`
	VehicleType        string    `json:"vehicleType,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type CreateAmbulanceRequest struct {
	Name               string `json:"name" binding:"required,min=2,max=120"`
	RegistrationNumber string `json:"registrationNumber" binding:"required,min=3,max=40"`
	DriverName         string `json:"driverName" binding:"omitempty,max=120"`
	DriverPhone        string `json:"driverPhone" binding:"omitempty,max=30"`
	VehicleType        string `json:"vehicleType" binding:"omitempty,max=60"`
	Status             string `json:"status" binding:"omitempty,oneof=Available 'On Call' Maintenance Retired"`
}

type UpdateAmbulanceRequest struct {
	Name               string `json:"name" binding:"required,min=2,max=120"`
	RegistrationNumber string `json:"registrationNumber" binding:"required,min=3,max=40"`
	DriverName         string `json:"driverName" binding:"omitempty,max=120"`
	DriverPhone        string `json:"driverPhone" binding:"omitempty,max=30"`
	VehicleType        string `json:"vehicleType" binding:"omitempty,max=60"`
	Status             string `json:"status" binding:"required,oneof=Available 'On Call' Maintenance Retired"`
}
