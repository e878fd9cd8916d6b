package jobs

import (
	"time"

	"github.com/google/uuid"
)

// a Job is the unit of asynchronous work handed to the queue worker.

type Job struct {
	ID        string    `json:"id"`
	Type      JobType   `json:"type"`
	Payload   []byte    `json:"payload"` // raw json
	Status    JobStatus `json:"status"`
	Attempts  int       `json:"attempts"`
	MaxTries  int       `json:"maxTries"`
	LastError *string   `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// creation of a new pending job with defaults.

func NewJob(t JobType, payloadJSON []byte) (Job, error) {
	if !t.IsValid() {
		return Job{}, ErrInvalidJobType
	}

	now := time.Now().UTC()

	j := Job{
		ID:        uuid.NewString(),
		Type:      t,
		Payload:   payloadJSON,
		Status:    JobPending,
		Attempts:  0,
		MaxTries:  5,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return j, nil
}
