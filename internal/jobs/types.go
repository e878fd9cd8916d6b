package jobs

type JobType string

const (
	JobDispatchEmergencyCall JobType = "dispatch_emergency_call"
	JobMedicineLowStock      JobType = "medicine_low_stock"
)

// check to see if the job type is a known constant

func (t JobType) IsValid() bool {
	switch t {
	case JobDispatchEmergencyCall, JobMedicineLowStock:
		return true
	default:
		return false
	}
}
