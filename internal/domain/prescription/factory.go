package prescription

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreatePrescriptionRequest) Prescription {
	now := time.Now().UTC()

	kind := req.PrescriptionType
	if kind == "" {
		kind = "Standard"
	}

	return Prescription{
		ID:                 uuid.NewString(),
		PatientID:          req.PatientID,
		DoctorID:           req.DoctorID,
		PrescriptionType:   kind,
		PrescriptionDate:   now,
		Diagnosis:          req.Diagnosis,
		Medications:        req.Medications,
		NotesForPharmacist: req.NotesForPharmacist,
		Status:             "Active",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
