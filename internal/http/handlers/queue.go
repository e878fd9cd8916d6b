package handlers

import (
	"context"

	"github.com/medixpro/medixpro/internal/jobs"
)

// JobEnqueuer is the producer side of the redis queue. Enqueue failures
// never fail the originating request; the write already happened.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, j jobs.Job) error
}
