package queue

import (
	"context"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
)

// NoopEnqueuer is a no-op enqueuer when Redis/Asynq is not configured.
type NoopEnqueuer struct{}

func NewNoopEnqueuer() *NoopEnqueuer {
	return &NoopEnqueuer{}
}

func (q *NoopEnqueuer) EnqueueBookingConfirmation(ctx context.Context, c ports.BookingConfirmation) error {
	return nil
}

var _ ports.TaskEnqueuer = (*NoopEnqueuer)(nil)
