package jobs

import "testing"

func TestEncodeDecode_DispatchEmergencyCall(t *testing.T) {
	payload := DispatchEmergencyCallPayload{
		CallID:        "call-123",
		PatientName:   "John Smith",
		Location:      "12 Main St",
		EmergencyType: "Cardiac",
		Priority:      "Critical",
	}

	b, err := EncodePayload(JobDispatchEmergencyCall, payload)
	if err != nil {
		t.Fatalf("EncodePayload error: %v", err)
	}

	j, err := NewJob(JobDispatchEmergencyCall, b)
	if err != nil {
		t.Fatalf("NewJob error: %v", err)
	}

	decoded, err := DecodePayload(j)
	if err != nil {
		t.Fatalf("DecodePayload error: %v", err)
	}

	p, ok := decoded.(DispatchEmergencyCallPayload)
	if !ok {
		t.Fatalf("expected DispatchEmergencyCallPayload, got %T", decoded)
	}

	if p.CallID != payload.CallID {
		t.Fatalf("expected callId %s, got %s", payload.CallID, p.CallID)
	}
}

func TestEncodePayload_TypeMismatch(t *testing.T) {
	_, err := EncodePayload(JobDispatchEmergencyCall, MedicineLowStockPayload{
		MedicineID: "m1",
		Name:       "Paracetamol",
		Stock:      3,
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err != ErrPayloadTypeMismatch {
		t.Fatalf("expected ErrPayloadTypeMismatch, got %v", err)
	}
}

func TestValidatePayload_RequiredIDs(t *testing.T) {
	err := ValidatePayload(JobDispatchEmergencyCall, DispatchEmergencyCallPayload{CallID: ""})
	if err == nil {
		t.Fatalf("expected error")
	}

	err = ValidatePayload(JobMedicineLowStock, MedicineLowStockPayload{MedicineID: ""})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewJob_InvalidType(t *testing.T) {
	_, err := NewJob(JobType("no_such_job"), nil)
	if err != ErrInvalidJobType {
		t.Fatalf("expected ErrInvalidJobType, got %v", err)
	}
}
