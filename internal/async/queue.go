package async

import (
	"context"
	"time"

	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/pipeline"
)

// Job is the smallest useful unit: one fetched email plus the batch it counts
// into. Done, when set, is called after the email finished either way; the
// poller uses it to know when a whole poll cycle has drained.
type Job struct {
	Email       entity.Email
	Batch       *pipeline.BatchStats
	SubmittedAt time.Time
	Done        func()
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
