package prescription

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("prescription not found")

type Prescription struct {
	ID                 string    `json:"id"`
	PatientID          string    `json:"patientId"`
	DoctorID           string    `json:"doctorId"`
	PrescriptionType   string    `json:"prescriptionType"`
	PrescriptionDate   time.Time `json:"prescriptionDate"`
	Diagnosis          string    `json:"diagnosis"`
	Medications        string    `json:"medications"`
	NotesForPharmacist string    `json:"notesForPharmacist,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type CreatePrescriptionRequest struct {
	PatientID          string `json:"patientId" binding:"required,uuid"`
	DoctorID           string `json:"doctorId" binding:"required,uuid"`
	PrescriptionType   string `json:"prescriptionType" binding:"omitempty,max=60"`
	Diagnosis          string `json:"diagnosis" binding:"required,max=1000"`
	Medications        string `json:"medications" binding:"required,max=2000"`
	NotesForPharmacist string `json:"notesForPharmacist" binding:"omitempty,max=1000"`
}

type UpdatePrescriptionRequest struct {
	Diagnosis          string `json:"diagnosis" binding:"required,max=1000"`
	Medications        string `json:"medications" binding:"required,max=2000"`
	NotesForPharmacist string `json:"notesForPharmacist" binding:"omitempty,max=1000"`
	Status             string `json:"status" binding:"required,oneof=Active Completed Cancelled"`
}
