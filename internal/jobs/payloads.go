package jobs

// DispatchEmergencyCallPayload carries the data the worker needs to alert
// the dispatch desk. Keep payloads minimal and ID-based; the worker loads
// details from the DB when it needs more.
type DispatchEmergencyCallPayload struct {
	CallID        string `json:"callId"`
	PatientName   string `json:"patientName"`
	Location      string `json:"location"`
	EmergencyType string `json:"emergencyType"`
	Priority      string `json:"priority"`
	RequestID     string `json:"requestId,omitempty"` // optional: correlation
}

// MedicineLowStockPayload alerts the pharmacy when stock drops below the
// reorder level.
type MedicineLowStockPayload struct {
	MedicineID string `json:"medicineId"`
	Name       string `json:"name"`
	Stock      int    `json:"stock"`
	RequestID  string `json:"requestId,omitempty"`
}
