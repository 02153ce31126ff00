package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
)

const TypeBookingConfirmation = "email:booking_confirmation"

// TaskEnqueuer pushes tasks onto the Asynq queue.
type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) (*TaskEnqueuer, error) {
	client := asynq.NewClient(redisOpt)
	return &TaskEnqueuer{client: client, log: log}, nil
}

func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

func (q *TaskEnqueuer) EnqueueBookingConfirmation(ctx context.Context, c ports.BookingConfirmation) error {
	payload, _ := json.Marshal(c)
	task := asynq.NewTask(TypeBookingConfirmation, payload)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).
			Str("email", c.Email).
			Str("reservation_id", c.ReservationID).
			Msg("enqueue booking confirmation failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
