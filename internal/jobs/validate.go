package jobs

import "strings"

// ValidatePayload performs minimal validation on decoded payloads.
func ValidatePayload(t JobType, payload any) error {
	if !t.IsValid() {
		return ErrInvalidJobType
	}

	trim := func(s string) string { return strings.TrimSpace(s) }

	switch t {
	case JobDispatchEmergencyCall:
		var p DispatchEmergencyCallPayload
		switch v := payload.(type) {
		case DispatchEmergencyCallPayload:
			p = v
		case *DispatchEmergencyCallPayload:
			p = *v
		default:
			return ErrPayloadTypeMismatch
		}
		if trim(p.CallID) == "" || trim(p.Location) == "" {
			return ErrInvalidJobPayload
		}
		return nil

	case JobMedicineLowStock:
		var p MedicineLowStockPayload
		switch v := payload.(type) {
		case MedicineLowStockPayload:
			p = v
		case *MedicineLowStockPayload:
			p = *v
		default:
			return ErrPayloadTypeMismatch
		}
		if trim(p.MedicineID) == "" {
			return ErrInvalidJobPayload
		}
		return nil

	default:
		return ErrInvalidJobType
	}
}
